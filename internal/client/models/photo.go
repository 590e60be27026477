package models

// PhotoUpload holds the server side of a completed photo round trip.
type PhotoUpload struct {
	URL     string
	AINotes string
}

// Photo is a photo attached to a draft audit. Upload stays nil while the
// upload round trip is outstanding; a photo with a nil Upload must never be
// forwarded in a submission.
type Photo struct {
	// File is the local path the photo was read from.
	File string

	// Preview is the locally generated preview handle.
	Preview string

	Upload *PhotoUpload
}

// Uploaded reports whether the upload round trip completed.
func (p Photo) Uploaded() bool {
	return p.Upload != nil
}

// UploadedURLs returns the server URLs of the photos whose upload completed,
// in order, skipping pending ones.
func UploadedURLs(photos []Photo) []string {
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		if p.Upload != nil {
			urls = append(urls, p.Upload.URL)
		}
	}
	return urls
}
