package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"convoyage/internal/domain/render"
	"convoyage/internal/usecase/interfaces"
)

var ErrExportFailed = errors.New("document export failed")

const exportURLTTL = 15 * time.Minute

// IDocumentExportUseCase renders finalized records to printable HTML and
// exports them to the file store behind a signed URL.
//
// Export failures are retryable and never touch the underlying record.

type IDocumentExportUseCase interface {
	RenderDocument(ctx context.Context, documentID string) (string, error)
	ExportDocument(ctx context.Context, documentID string) (ExportResult, error)
	RenderMissionSheet(ctx context.Context, missionID string) (string, error)
}

// ExportResult points at the uploaded artifact.
type ExportResult struct {
	Key       string
	SignedURL string
	PublicURL string
}

type DocumentExportUseCase struct {
	docs     IBillingDocumentUseCase
	missions IMissionUseCase
	files    interfaces.IFileStore
	issuer   render.Issuer
}

var _ IDocumentExportUseCase = (*DocumentExportUseCase)(nil)

func NewDocumentExportUseCase(docs IBillingDocumentUseCase, missions IMissionUseCase, files interfaces.IFileStore, issuer render.Issuer) *DocumentExportUseCase {
	return &DocumentExportUseCase{docs: docs, missions: missions, files: files, issuer: issuer}
}

func (u *DocumentExportUseCase) RenderDocument(ctx context.Context, documentID string) (string, error) {
	doc, err := u.docs.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	markup, err := render.Document(doc, u.issuer)
	if err != nil {
		log.Printf("[export][usecase] render failed document_id=%s err=%v", documentID, err)
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return markup, nil
}

// ExportDocument renders, uploads, and returns a time-limited signed URL.
func (u *DocumentExportUseCase) ExportDocument(ctx context.Context, documentID string) (ExportResult, error) {
	if u.files == nil {
		return ExportResult{}, fmt.Errorf("%w: file store not configured", ErrExportFailed)
	}

	doc, err := u.docs.GetByID(ctx, documentID)
	if err != nil {
		return ExportResult{}, err
	}
	markup, err := render.Document(doc, u.issuer)
	if err != nil {
		log.Printf("[export][usecase] render failed document_id=%s err=%v", documentID, err)
		return ExportResult{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	key := fmt.Sprintf("documents/%s/%s.html", doc.OwnerID, doc.Number)
	if err := u.files.Upload(ctx, key, "text/html; charset=utf-8", []byte(markup)); err != nil {
		log.Printf("[export][usecase] upload failed document_id=%s key=%s err=%v", documentID, key, err)
		return ExportResult{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	signed, err := u.files.SignedURL(ctx, key, exportURLTTL)
	if err != nil {
		log.Printf("[export][usecase] sign failed document_id=%s key=%s err=%v", documentID, key, err)
		return ExportResult{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return ExportResult{Key: key, SignedURL: signed, PublicURL: u.files.PublicURL(key)}, nil
}

func (u *DocumentExportUseCase) RenderMissionSheet(ctx context.Context, missionID string) (string, error) {
	m, err := u.missions.GetByID(ctx, missionID)
	if err != nil {
		return "", err
	}
	markup, err := render.MissionSheet(m, u.issuer)
	if err != nil {
		log.Printf("[export][usecase] mission render failed mission_id=%s err=%v", missionID, err)
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return markup, nil
}
