package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AnTengye/contractstudio/compose"
	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/logger"
	"github.com/AnTengye/contractstudio/render"
	"github.com/google/uuid"
)

// Archiver is the object storage behind archived contracts.
// *ArchiveService implements it.
type Archiver interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName, filename string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// DocumentService composes, renders and archives contracts.
type DocumentService struct {
	assembler *compose.Assembler
	archive   Archiver
	store     *DocumentStore
}

// NewDocumentService wires the assembler to storage. A nil archive disables
// archiving; composing and rendering still work.
func NewDocumentService(assembler *compose.Assembler, archive Archiver, store *DocumentStore) *DocumentService {
	return &DocumentService{
		assembler: assembler,
		archive:   archive,
		store:     store,
	}
}

// ArchiveEnabled reports whether Archive can store documents.
func (s *DocumentService) ArchiveEnabled() bool {
	return s.archive != nil
}

// Compose builds the block tree for c.
func (s *DocumentService) Compose(c model.Contract) *document.Document {
	return s.assembler.Assemble(c)
}

// Render builds the block tree for c and its HTML.
func (s *DocumentService) Render(c model.Contract) (*document.Document, []byte, error) {
	doc := s.assembler.Assemble(c)
	body, err := render.Bytes(doc)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

// ObjectName is the storage key of an archived contract.
func ObjectName(tenant, id string, ct model.ContractType) string {
	return fmt.Sprintf("%s/%s/%s", tenant, id, Filename(ct))
}

// Filename is the download name of an archived contract.
func Filename(ct model.ContractType) string {
	return string(ct) + ".html"
}

// Archive renders c, uploads it and records it for tenant.
func (s *DocumentService) Archive(ctx context.Context, tenant string, c model.Contract) (*model.ArchivedDocument, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if c == nil || !compose.Supported(c.Type()) {
		var ct model.ContractType
		if c != nil {
			ct = c.Type()
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ct)
	}

	doc, body, err := s.Render(c)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	objectName := ObjectName(tenant, id, c.Type())
	if err := s.archive.Put(ctx, objectName, bytes.NewReader(body), int64(len(body)), render.ContentType); err != nil {
		return nil, err
	}

	url, err := s.archive.PresignedURL(ctx, objectName, Filename(c.Type()))
	if err != nil {
		if delErr := s.archive.Delete(ctx, objectName); delErr != nil {
			logger.Warn(ctx, "failed to remove orphaned object", "object", objectName, "error", delErr)
		}
		return nil, err
	}

	now := time.Now()
	rec := &model.ArchivedDocument{
		ID:           id,
		Tenant:       tenant,
		ContractType: c.Type(),
		Title:        doc.Title,
		ObjectName:   objectName,
		URL:          url,
		Size:         int64(len(body)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, old := range s.store.Save(rec) {
		if err := s.archive.Delete(ctx, old.ObjectName); err != nil {
			logger.Warn(ctx, "failed to remove evicted object", "object", old.ObjectName, "error", err)
		}
	}

	logger.Info(ctx, "contract archived",
		"document_id", id,
		"contract_type", c.Type(),
		"size", len(body),
	)
	return rec, nil
}

// List returns the tenant's archived documents, newest first.
func (s *DocumentService) List(tenant string) []*model.ArchivedDocument {
	return s.store.GetByTenant(tenant)
}

// Get returns one archived document with a fresh download link.
func (s *DocumentService) Get(ctx context.Context, tenant, id string) (*model.ArchivedDocument, error) {
	d := s.store.Get(id)
	if d == nil || d.Tenant != tenant {
		return nil, ErrNotFound
	}

	out := *d
	if s.archive != nil {
		url, err := s.archive.PresignedURL(ctx, d.ObjectName, Filename(d.ContractType))
		if err != nil {
			logger.Warn(ctx, "failed to refresh download link", "document_id", id, "error", err)
		} else {
			out.URL = url
		}
	}
	return &out, nil
}

// Delete removes the document and its stored object.
func (s *DocumentService) Delete(ctx context.Context, tenant, id string) error {
	d := s.store.Get(id)
	if d == nil || d.Tenant != tenant {
		return ErrNotFound
	}
	if s.archive != nil {
		if err := s.archive.Delete(ctx, d.ObjectName); err != nil {
			return err
		}
	}
	s.store.Delete(id)

	logger.Info(ctx, "archived contract deleted", "document_id", id)
	return nil
}
