// Package inspection owns the state of an in-progress audit: the selected
// rating, free-text comments, attached photos, optional voice note, and the
// flags the inspection screen renders from. The form exists only while an
// inspection is active; it is created fresh on "start inspection" and
// discarded on submit or cancel.
package inspection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

// TranscriptionMarker is appended to the comments once the simulated
// transcription of a stopped recording completes.
const TranscriptionMarker = "[Voice note transcribed]"

// DefaultTranscriptionDelay matches the reference backend's stand-in for a
// real speech-to-text round trip.
const DefaultTranscriptionDelay = 500 * time.Millisecond

var (
	ErrEmptyComments = errors.New("comments are required")
	ErrSubmitting    = errors.New("submission already in flight")
	ErrUploading     = errors.New("photo upload in flight")
)

// openFile is a test seam for reading local photo and audio files.
var openFile = func(name string) (io.ReadCloser, error) { return os.Open(name) }

// Service is the slice of the API surface the form needs.
type Service interface {
	UploadPhoto(ctx context.Context, filename string, r io.Reader) (*models.PhotoUploadResult, error)
	UploadVoice(ctx context.Context, filename string, r io.Reader) (*models.VoiceUploadResult, error)
	SubmitAudit(ctx context.Context, audit models.AuditSubmission) (*models.AuditResult, error)
}

// Form holds the mutable draft-audit state. All exported methods are safe
// for use while an upload batch or transcription timer is outstanding.
type Form struct {
	svc                Service
	transcriptionDelay time.Duration

	mu            sync.Mutex
	status        models.AuditStatus
	comments      string
	photos        []models.Photo
	voiceFileURL  string
	recording     bool
	uploading     bool
	submitting    bool
	err           string

	// transcription is the latest scheduled completion; transcriptionGen
	// invalidates every completion scheduled before the last Reset.
	transcription    *time.Timer
	transcriptionGen uint64
}

// NewForm returns a fresh draft with the default "Good" rating.
func NewForm(svc Service) *Form {
	return &Form{svc: svc, status: models.StatusGood, transcriptionDelay: DefaultTranscriptionDelay}
}

// Snapshot is an immutable copy of the form state for rendering.
type Snapshot struct {
	Status       models.AuditStatus
	Comments     string
	Photos       []models.Photo
	VoiceFileURL string
	Recording    bool
	Uploading    bool
	Submitting   bool
	Err          string
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	photos := make([]models.Photo, len(f.photos))
	copy(photos, f.photos)
	return Snapshot{
		Status:       f.status,
		Comments:     f.comments,
		Photos:       photos,
		VoiceFileURL: f.voiceFileURL,
		Recording:    f.recording,
		Uploading:    f.uploading,
		Submitting:   f.submitting,
		Err:          f.err,
	}
}

// SetStatus selects the audit rating. Rejected while an upload batch is in
// flight, matching the inspection screen's disabled state.
func (f *Form) SetStatus(s models.AuditStatus) error {
	if !s.Valid() {
		return fmt.Errorf("unknown audit status %q", s)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploading {
		return ErrUploading
	}
	f.status = s
	return nil
}

// SetComments replaces the free-text comments.
func (f *Form) SetComments(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = text
}

// appendComments adds text to the comments, space separated.
func (f *Form) appendComments(text string) {
	if f.comments != "" {
		f.comments += " "
	}
	f.comments += text
}

// UploadPhotos uploads the given files concurrently and appends the results
// to the photo list only after the whole batch resolves. The batch is
// all-or-nothing: one failing upload fails the batch and no photo from it is
// appended.
func (f *Form) UploadPhotos(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return nil
	}

	f.mu.Lock()
	if f.uploading {
		f.mu.Unlock()
		return ErrUploading
	}
	f.uploading = true
	f.err = ""
	f.mu.Unlock()

	uploaded := make([]models.Photo, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			r, err := openFile(file)
			if err != nil {
				return fmt.Errorf("open %s: %w", file, err)
			}
			defer r.Close()

			result, err := f.svc.UploadPhoto(gctx, filepath.Base(file), r)
			if err != nil {
				return fmt.Errorf("upload %s: %w", filepath.Base(file), err)
			}
			uploaded[i] = models.Photo{
				File:    file,
				Preview: uuid.NewString(),
				Upload:  &models.PhotoUpload{URL: result.URL, AINotes: result.AINotes},
			}
			return nil
		})
	}
	err := g.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploading = false
	if err != nil {
		f.err = "Failed to upload photos: " + err.Error()
		return err
	}
	f.photos = append(f.photos, uploaded...)
	return nil
}

// ToggleVoiceRecording flips the recorder between idle and recording. On the
// stop transition it schedules the simulated transcription, which appends
// exactly one marker to the comments once the delay fires. The pending
// completion is cancelled by Reset, so a discarded draft is never mutated.
func (f *Form) ToggleVoiceRecording() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.recording {
		f.recording = true
		return true
	}

	f.recording = false
	gen := f.transcriptionGen
	f.transcription = time.AfterFunc(f.transcriptionDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A timer scheduled before the last Reset must not touch the draft,
		// even when it already fired and was waiting on the lock.
		if f.transcriptionGen != gen {
			return
		}
		f.appendComments(TranscriptionMarker)
	})
	return false
}

// AttachVoiceNote uploads a recorded audio file, keeps the returned voice
// URL for submission, and appends the backend's transcription, if any, to
// the comments.
func (f *Form) AttachVoiceNote(ctx context.Context, file string) error {
	r, err := openFile(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer r.Close()

	result, err := f.svc.UploadVoice(ctx, filepath.Base(file), r)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.err = "Failed to upload voice note: " + err.Error()
		return err
	}
	f.voiceFileURL = result.URL
	if result.Transcription != "" {
		f.appendComments(result.Transcription)
	}
	return nil
}

// Submit sends the draft. The payload carries only photos whose upload
// completed. On failure the error is recorded and the draft is left intact
// so the inspector can retry without re-entering anything.
func (f *Form) Submit(ctx context.Context, assetID, inspectorID int) (*models.AuditResult, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitting
	}
	if f.comments == "" {
		f.mu.Unlock()
		return nil, ErrEmptyComments
	}
	f.submitting = true
	f.err = ""
	audit := models.AuditSubmission{
		AssetID:      assetID,
		InspectorID:  inspectorID,
		AuditStatus:  string(f.status),
		RawComments:  f.comments,
		VoiceFileURL: f.voiceFileURL,
		PhotoURLs:    models.UploadedURLs(f.photos),
	}
	f.mu.Unlock()

	result, err := f.svc.SubmitAudit(ctx, audit)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.err = "Failed to submit audit: " + err.Error()
		return nil, err
	}
	return result, nil
}

// Reset restores the draft to its initial state: rating "Good", no comments,
// no photos, no voice note, recorder idle, no error. Any pending
// transcription completion is cancelled.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.transcription != nil {
		f.transcription.Stop()
		f.transcription = nil
	}
	f.transcriptionGen++
	f.status = models.StatusGood
	f.comments = ""
	f.photos = nil
	f.voiceFileURL = ""
	f.recording = false
	f.err = ""
}
