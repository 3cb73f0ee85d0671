package services

import (
	"strings"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
)

// AttachmentUpload describes a file that has already been placed in external
// storage. The core never sees file bytes, only the opaque URL plus the
// metadata needed to classify and validate it.
type AttachmentUpload struct {
	URL         string
	ContentType string
	Size        int64
}

// attachmentClass is the coarse media classification used by messaging.
type attachmentClass int

const (
	attachmentImage attachmentClass = iota
	attachmentVideo
	attachmentDoc
)

func classifyAttachment(contentType string) attachmentClass {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return attachmentImage
	case strings.HasPrefix(contentType, "video/"):
		return attachmentVideo
	default:
		return attachmentDoc
	}
}

// validateAttachment checks an upload against the configured size limits for
// its class and returns that class.
func validateAttachment(cfg *config.Config, up *AttachmentUpload) (attachmentClass, error) {
	if strings.TrimSpace(up.URL) == "" {
		return 0, apperr.Validation("attachment is missing its storage URL")
	}
	if up.Size <= 0 {
		return 0, apperr.Validation("attachment size must be positive")
	}

	class := classifyAttachment(up.ContentType)
	switch class {
	case attachmentImage, attachmentVideo:
		if up.Size > cfg.MaxImageAttachmentBytes {
			return 0, apperr.Validation("media attachments are limited to %d bytes", cfg.MaxImageAttachmentBytes)
		}
	default:
		if up.Size > cfg.MaxDocAttachmentBytes {
			return 0, apperr.Validation("document attachments are limited to %d bytes", cfg.MaxDocAttachmentBytes)
		}
	}
	return class, nil
}
