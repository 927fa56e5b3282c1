package logic

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/buckket/go-blurhash"
	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"post_later/dal"
	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_media_staging.go -package mocks post_later/logic IMediaStaging

const thumbSize = 200
const thumbsSubdir = "thumbs"
const purgeBatchSize = 100

var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var videoExts = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

type IMediaStaging interface {
	// Stage validates and stores an uploaded file, makes the thumbnail for
	// images, and records the attachment as unattached.
	Stage(userId string, data []byte, origName, mimeType string, focusX, focusY float64,
		description string) (*dal.MediaAttachment, error)
	// UploadMedia pushes a staged attachment to the provider. Already
	// uploaded attachments just return their remote ID again.
	UploadMedia(provider IProvider, auth *dal.ProviderAuth, ma *dal.MediaAttachment) (string, error)
	// Discard removes one unattached staged attachment, files included.
	// Returns false when it is attached to a post, or already gone.
	Discard(id int64) (bool, error)
	// CleanOrphans deletes attachments that never got attached to a post
	// within the retention window, files included.
	CleanOrphans() (int, error)
}

type mediaStaging struct {
	cfg       *shared.Config
	logger    shared.ILogger
	clock     shared.IClock
	repo      dal.IRepo
	metrics   IMetrics
	muPurging sync.Mutex
	isPurging bool
}

func NewMediaStaging(cfg *shared.Config, logger shared.ILogger, clock shared.IClock,
	repo dal.IRepo, metrics IMetrics) IMediaStaging {

	if err := os.MkdirAll(filepath.Join(cfg.Media.Dir, thumbsSubdir), 0755); err != nil {
		logger.Errorf("Failed to create media directories under %s: %v", cfg.Media.Dir, err)
		panic(err)
	}
	return &mediaStaging{
		cfg:     cfg,
		logger:  logger,
		clock:   clock,
		repo:    repo,
		metrics: metrics,
	}
}

func (ms *mediaStaging) filePath(name string) string {
	return filepath.Join(ms.cfg.Media.Dir, name)
}

func (ms *mediaStaging) thumbPath(name string) string {
	return filepath.Join(ms.cfg.Media.Dir, thumbsSubdir, name)
}

func (ms *mediaStaging) checkType(mimeType string) (ext string, isImage bool, err error) {
	if e, ok := imageExts[mimeType]; ok {
		return e, true, nil
	}
	if e, ok := videoExts[mimeType]; ok {
		return e, false, nil
	}
	return "", false, fmt.Errorf("unsupported media type: %s", mimeType)
}

func (ms *mediaStaging) Stage(userId string, data []byte, origName, mimeType string,
	focusX, focusY float64, description string) (*dal.MediaAttachment, error) {

	ext, isImage, err := ms.checkType(mimeType)
	if err != nil {
		return nil, err
	}
	maxBytes := ms.cfg.Media.MaxVideoMb << 20
	if isImage {
		maxBytes = ms.cfg.Media.MaxImageMb << 20
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("media file is too large: %d bytes; limit is %d", len(data), maxBytes)
	}
	if err = shared.ValidateFocus(focusX, focusY); err != nil {
		return nil, err
	}

	hash := int64(murmur3.Sum32(data))
	ma := &dal.MediaAttachment{
		UserId:      userId,
		OrigName:    origName,
		MimeType:    mimeType,
		ByteSize:    int64(len(data)),
		ContentHash: hash,
		FocusX:      focusX,
		FocusY:      focusY,
		Description: description,
		Status:      dal.MediaStatusPending,
		CreatedAt:   ms.clock.Now(),
	}

	dupe, err := ms.repo.GetMediaByHash(hash, userId, int64(len(data)))
	if err != nil {
		return nil, err
	}
	if dupe != nil {
		// Same bytes staged before: share the stored file and thumbnail
		ma.FileName = dupe.FileName
		ma.ThumbFile = dupe.ThumbFile
		ma.Blurhash = dupe.Blurhash
	} else {
		name := uuid.NewString() + ext
		if err = os.WriteFile(ms.filePath(name), data, 0644); err != nil {
			return nil, fmt.Errorf("failed to store media file: %v", err)
		}
		ma.FileName = name
		if isImage {
			thumbBytes, blurStr, err := makeThumbnail(data, mimeType, focusX, focusY)
			if err != nil {
				return nil, fmt.Errorf("failed to process image '%s': %v", origName, err)
			}
			thumbName := uuid.NewString() + ".jpg"
			if err = os.WriteFile(ms.thumbPath(thumbName), thumbBytes, 0644); err != nil {
				return nil, fmt.Errorf("failed to store thumbnail: %v", err)
			}
			ma.ThumbFile = thumbName
			ma.Blurhash = blurStr
		}
	}

	id, err := ms.repo.AddMediaAttachment(ma)
	if err != nil {
		return nil, err
	}
	ma.Id = id
	ms.logger.Debugf("Staged media attachment %d: %s (%d bytes)", id, origName, len(data))
	return ma, nil
}

func (ms *mediaStaging) UploadMedia(provider IProvider, auth *dal.ProviderAuth,
	ma *dal.MediaAttachment) (string, error) {

	if ma.Status == dal.MediaStatusUploaded && ma.RemoteId != "" {
		return ma.RemoteId, nil
	}
	remoteId, err := provider.UploadMedia(auth, ma, ms.filePath(ma.FileName))
	if err != nil {
		return "", &MediaUploadError{AttachmentId: ma.Id, Err: err}
	}
	if err = ms.repo.UpdateMediaUploaded(ma.Id, remoteId); err != nil {
		return "", err
	}
	ms.metrics.MediaUploaded()
	ms.logger.Debugf("Uploaded media attachment %d; remote ID %s", ma.Id, remoteId)
	return remoteId, nil
}

func (ms *mediaStaging) Discard(id int64) (bool, error) {

	ma, err := ms.repo.GetMediaAttachment(id)
	if err != nil {
		return false, err
	}
	if ma == nil {
		return false, nil
	}
	deleted, err := ms.repo.DeleteMediaIfUnattached(id)
	if err != nil || !deleted {
		return false, err
	}
	ms.deleteFiles(ma)
	ms.logger.Debugf("Discarded media attachment %d", id)
	return true, nil
}

func (ms *mediaStaging) CleanOrphans() (int, error) {

	ms.muPurging.Lock()
	if ms.isPurging {
		ms.muPurging.Unlock()
		ms.logger.Info("Orphan media purge is already in progress; not starting another")
		return 0, nil
	}
	ms.isPurging = true
	ms.muPurging.Unlock()

	defer func() {
		ms.muPurging.Lock()
		ms.isPurging = false
		ms.muPurging.Unlock()
	}()

	olderThan := ms.clock.Now().AddDate(0, 0, -ms.cfg.Media.OrphanRetentionDays)
	count := 0
	for {
		orphans, err := ms.repo.GetOrphanMedia(olderThan, purgeBatchSize)
		if err != nil {
			return count, err
		}
		if len(orphans) == 0 {
			break
		}
		for _, ma := range orphans {
			deleted, err := ms.repo.DeleteMediaIfUnattached(ma.Id)
			if err != nil {
				return count, err
			}
			if !deleted {
				// Got attached to a post while we were sweeping
				continue
			}
			ms.deleteFiles(ma)
			count++
		}
		if len(orphans) < purgeBatchSize {
			break
		}
	}
	if count != 0 {
		ms.logger.Infof("Purged %d orphaned media attachments", count)
		ms.metrics.OrphanMediaPurged(count)
	}
	return count, nil
}

func (ms *mediaStaging) deleteFiles(ma *dal.MediaAttachment) {

	others, err := ms.repo.CountMediaByHash(ma.ContentHash, ma.Id)
	if err != nil {
		ms.logger.Errorf("Failed to check for attachments sharing files with %d: %v", ma.Id, err)
		return
	}
	if others != 0 {
		// Another attachment still points at these files
		return
	}
	if err = os.Remove(ms.filePath(ma.FileName)); err != nil && !os.IsNotExist(err) {
		ms.logger.Warnf("Failed to delete media file %s: %v", ma.FileName, err)
	}
	if ma.ThumbFile != "" {
		if err = os.Remove(ms.thumbPath(ma.ThumbFile)); err != nil && !os.IsNotExist(err) {
			ms.logger.Warnf("Failed to delete thumbnail %s: %v", ma.ThumbFile, err)
		}
	}
}

// makeThumbnail renders a square thumbnail cropped around the focal point,
// plus the blurhash placeholder string.
func makeThumbnail(data []byte, mimeType string, focusX, focusY float64) ([]byte, string, error) {

	var img image.Image
	var err error
	if mimeType == "image/webp" {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", err
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbSize, thumbSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, thumbRect(img.Bounds(), focusX, focusY), draw.Src, nil)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", err
	}
	blurStr, _ := blurhash.Encode(4, 3, dst)
	return buf.Bytes(), blurStr, nil
}

// thumbRect picks the largest square crop containing the focal point.
// Focus coordinates run from -1 to 1, with +y pointing up.
func thumbRect(bounds image.Rectangle, focusX, focusY float64) image.Rectangle {

	w := bounds.Dx()
	h := bounds.Dy()
	side := w
	if h < side {
		side = h
	}
	cx := float64(bounds.Min.X) + (focusX+1)/2*float64(w)
	cy := float64(bounds.Min.Y) + (1-focusY)/2*float64(h)

	x0 := int(cx) - side/2
	y0 := int(cy) - side/2
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if x0 > bounds.Max.X-side {
		x0 = bounds.Max.X - side
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if y0 > bounds.Max.Y-side {
		y0 = bounds.Max.Y - side
	}
	return image.Rect(x0, y0, x0+side, y0+side)
}
