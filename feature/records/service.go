package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"roster-manager/core/fileio"
	"roster-manager/core/importer"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/schema"
	"roster-manager/core/storage"
	"roster-manager/core/store"
	"roster-manager/feature/records/models"

	"go.uber.org/zap"
)

// ErrInvalidRequest marks errors caused by the caller's input.
var ErrInvalidRequest = errors.New("invalid request")

// Service handles record import, reconciliation and export.
type Service struct {
	registry     *schema.Registry
	store        *store.Store
	cache        *reconcile.Cache
	client       storage.Client
	bucket       string
	logger       *zap.Logger
	importCfg    importer.Config
	reconcileCfg reconcile.Config
	now          func() time.Time
}

// NewService creates a new records service.
func NewService(
	registry *schema.Registry,
	st *store.Store,
	client storage.Client,
	bucket string,
	logger *zap.Logger,
	importCfg importer.Config,
	reconcileCfg reconcile.Config,
) *Service {
	return &Service{
		registry:     registry,
		store:        st,
		cache:        reconcile.NewCache(reconcileCfg.CacheTTL()),
		client:       client,
		bucket:       bucket,
		logger:       logger,
		importCfg:    importCfg,
		reconcileCfg: reconcileCfg,
		now:          time.Now,
	}
}

// Schemas describes every registered schema.
func (s *Service) Schemas() []models.SchemaInfo {
	all := s.registry.All()
	out := make([]models.SchemaInfo, len(all))
	for i, sch := range all {
		out[i] = models.NewSchemaInfo(sch)
	}
	return out
}

// Schema looks up a schema by base name.
func (s *Service) Schema(baseName string) (*schema.Schema, error) {
	sch, ok := s.registry.Get(baseName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", reconcile.ErrUnknownSchema, baseName)
	}
	return sch, nil
}

// Import normalizes decoded rows into canonical records.
func (s *Service) Import(baseName string, src importer.Source, lenient bool) ([]schema.Record, error) {
	sch, err := s.Schema(baseName)
	if err != nil {
		return nil, err
	}

	opts := s.importCfg.Options()
	if lenient {
		opts.Strict = false
	}
	return importer.Normalize(src, sch, opts)
}

// ImportRequest parses the file type of req and normalizes its rows.
func (s *Service) ImportRequest(baseName string, req models.ImportRequest) ([]schema.Record, error) {
	src := importer.Source{Data: req.Data, FileType: importer.FileTypeJSON}
	if req.FileType != "" {
		ft, err := importer.ParseFileType(req.FileType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		src.FileType = ft
	}
	return s.Import(baseName, src, req.Lenient)
}

// ImportFile decodes an uploaded file, choosing the codec from its name.
func (s *Service) ImportFile(baseName, filename string, data []byte, lenient bool) ([]schema.Record, error) {
	ft, err := importer.ParseFileType(path.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	rows, err := fileio.Decode(bytes.NewReader(data), ft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return s.Import(baseName, importer.Source{Data: rows, FileType: ft}, lenient)
}

// ImportObject downloads a file from object storage and imports it.
func (s *Service) ImportObject(ctx context.Context, baseName, key string, lenient bool) ([]schema.Record, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: object key is empty", ErrInvalidRequest)
	}
	if _, err := s.Schema(baseName); err != nil {
		return nil, err
	}

	data, err := storage.Download(ctx, s.client, s.bucket, key)
	if err != nil {
		return nil, err
	}
	return s.ImportFile(baseName, key, data, lenient)
}

// Diff classifies records against the stored records of baseName.
func (s *Service) Diff(ctx context.Context, baseName string, records []schema.Record, removals string) (*reconcile.Report, error) {
	sch, err := s.Schema(baseName)
	if err != nil {
		return nil, err
	}
	opts, err := s.diffOptions(removals, false)
	if err != nil {
		return nil, err
	}

	existing, err := s.cache.GetOrLoad(ctx, baseName, s.store)
	if err != nil {
		return nil, err
	}

	report := reconcile.Diff(sch, records, existing, opts)
	if len(report.DuplicateExistingKeys) > 0 {
		logger.WithBaseName(s.logger, baseName).Warn("Stored records share a primary key",
			zap.Strings("keys", report.DuplicateExistingKeys))
	}
	if len(report.MissingKeys) > 0 {
		logger.WithBaseName(s.logger, baseName).Warn("Incoming records have no primary key",
			zap.Ints("rows", report.MissingKeys))
	}
	return report, nil
}

// Apply plans and, when confirmed and not a dry run, writes records to the store.
func (s *Service) Apply(ctx context.Context, baseName string, records []schema.Record, removals string, opts reconcile.ApplyOptions) (*reconcile.Plan, int, error) {
	sch, err := s.Schema(baseName)
	if err != nil {
		return nil, 0, err
	}
	diffOpts, err := s.diffOptions(removals, opts.DoPurge)
	if err != nil {
		return nil, 0, err
	}

	plan, executed, err := reconcile.ReconcileAndApply(ctx, sch, records, s.cache, s.store, s.store, diffOpts, opts)
	if err != nil {
		return plan, executed, err
	}

	logger.WithBaseName(s.logger, baseName).Info("Applied import",
		zap.Int("inserts", plan.Summary.Inserts),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("deletes", plan.Summary.Deletes),
		zap.Int("executed", executed),
		zap.Bool("dry_run", opts.DryRun))
	return plan, executed, nil
}

// Records returns the stored records of baseName and their count.
func (s *Service) Records(ctx context.Context, baseName string) ([]schema.Record, int64, error) {
	if _, err := s.Schema(baseName); err != nil {
		return nil, 0, err
	}

	records, err := s.store.LoadRecords(ctx, baseName)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.Count(ctx, baseName)
	if err != nil {
		return nil, 0, err
	}
	return records, count, nil
}

// Export encodes the stored records of baseName as a file.
func (s *Service) Export(ctx context.Context, baseName string, ft importer.FileType) ([]byte, error) {
	sch, err := s.Schema(baseName)
	if err != nil {
		return nil, err
	}

	records, err := s.store.LoadRecords(ctx, baseName)
	if err != nil {
		return nil, err
	}
	data, err := fileio.EncodeBytes(ft, sch, records)
	if err != nil {
		if errors.Is(err, fileio.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		return nil, err
	}
	return data, nil
}

// UploadExport exports the stored records of baseName to object storage.
func (s *Service) UploadExport(ctx context.Context, baseName string, ft importer.FileType) (*models.ExportResponse, error) {
	data, err := s.Export(ctx, baseName, ft)
	if err != nil {
		return nil, err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return nil, err
	}

	key := storage.ExportKey(baseName, string(ft), s.now())
	info, err := storage.Upload(ctx, s.client, s.bucket, key, data, fileio.ContentType(ft))
	if err != nil {
		return nil, err
	}

	logger.WithBaseName(s.logger, baseName).Info("Uploaded export",
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return &models.ExportResponse{Bucket: s.bucket, Key: key, Size: info.Size}, nil
}

// ListExports lists the exports of baseName in object storage, newest first.
func (s *Service) ListExports(ctx context.Context, baseName string) ([]storage.ExportObject, error) {
	if _, err := s.Schema(baseName); err != nil {
		return nil, err
	}
	return storage.ListExports(ctx, s.client, s.bucket, baseName)
}

func (s *Service) diffOptions(removals string, purge bool) (reconcile.Options, error) {
	if removals == "" {
		removals = s.reconcileCfg.Removals
	}
	policy, err := reconcile.ParseRemovalPolicy(removals)
	if err != nil {
		return reconcile.Options{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if purge {
		policy = reconcile.RemovalsReport
	}
	return reconcile.Options{Removals: policy}, nil
}
