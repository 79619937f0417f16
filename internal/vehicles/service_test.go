package vehicles

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/pagination"
)

type fakeStore struct {
	createFn       func(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	findBySlugFn   func(ctx context.Context, slug string) (*models.Vehicle, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error
	listPendingFn  func(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Vehicle, error)
}

func (f *fakeStore) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	return f.createFn(ctx, vehicle)
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStore) FindBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	return f.findBySlugFn(ctx, slug)
}

func (f *fakeStore) UpdateModerationStatus(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeStore) ListPendingModeration(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Vehicle, error) {
	return f.listPendingFn(ctx, cursor, limit)
}

func TestCreate_DerivesSlugAndPendingStatus(t *testing.T) {
	var persisted *models.Vehicle
	store := &fakeStore{createFn: func(_ context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
		persisted = vehicle
		return vehicle, nil
	}}
	svc, err := NewService(ServiceParams{Repo: store})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	version := "EXL"
	dto, err := svc.Create(context.Background(), CreateInput{
		OwnerID:   uuid.New(),
		Brand:     "Honda",
		Model:     "HR-V",
		YearModel: 2021,
		Version:   &version,
		Type:      enums.VehicleTypeVan,
		Price:     decimal.NewFromInt(110000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if persisted == nil {
		t.Fatalf("expected vehicle persisted")
	}
	wantPrefix := "honda-hrv-2021-exl-"
	if !strings.HasPrefix(dto.Slug, wantPrefix) {
		t.Fatalf("expected slug prefix %q, got %q", wantPrefix, dto.Slug)
	}
	if !strings.HasSuffix(dto.Slug, persisted.ID.String()) {
		t.Fatalf("expected slug to end with id, got %q", dto.Slug)
	}
	if persisted.ModerationStatus != enums.ModerationStatusPending {
		t.Fatalf("expected pending status, got %s", persisted.ModerationStatus)
	}
	if dto.Price != "R$ 110.000,00" {
		t.Fatalf("expected formatted price, got %q", dto.Price)
	}
}

func TestCreate_ValidatesInput(t *testing.T) {
	store := &fakeStore{createFn: func(_ context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
		t.Fatalf("create must not be called for invalid input")
		return nil, nil
	}}
	svc, _ := NewService(ServiceParams{Repo: store})

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing owner", CreateInput{Brand: "Volvo", Model: "FH", Type: enums.VehicleTypeTruck}},
		{"missing brand", CreateInput{OwnerID: uuid.New(), Model: "FH", Type: enums.VehicleTypeTruck}},
		{"bad type", CreateInput{OwnerID: uuid.New(), Brand: "Volvo", Model: "FH", Type: "boat"}},
		{"negative price", CreateInput{OwnerID: uuid.New(), Brand: "Volvo", Model: "FH", Type: enums.VehicleTypeTruck, Price: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestResolveSlug_FallsBackToEmbeddedID(t *testing.T) {
	id := uuid.New()
	row := &models.Vehicle{ID: id, Brand: "Honda", Model: "HR-V", YearModel: 2021, Type: enums.VehicleTypeVan, Price: decimal.NewFromInt(90000), Slug: "honda-hrv-2021-" + id.String()}

	store := &fakeStore{
		findBySlugFn: func(context.Context, string) (*models.Vehicle, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByIDFn: func(_ context.Context, got uuid.UUID) (*models.Vehicle, error) {
			if got != id {
				return nil, gorm.ErrRecordNotFound
			}
			return row, nil
		},
	}
	svc, _ := NewService(ServiceParams{Repo: store})

	dto, err := svc.ResolveSlug(context.Background(), "honda-hrv-renamed-2021-"+id.String())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dto.ID != id {
		t.Fatalf("expected id %s, got %s", id, dto.ID)
	}
}

func TestResolveSlug_UnknownSlug(t *testing.T) {
	store := &fakeStore{
		findBySlugFn: func(context.Context, string) (*models.Vehicle, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByIDFn: func(context.Context, uuid.UUID) (*models.Vehicle, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _ := NewService(ServiceParams{Repo: store})

	_, err := svc.ResolveSlug(context.Background(), "fiat-toro-2020-abc123")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPendingModeration_Paginates(t *testing.T) {
	now := time.Now().UTC()
	rows := make([]models.Vehicle, 0, 3)
	for i := 0; i < 3; i++ {
		rows = append(rows, models.Vehicle{
			ID:        uuid.New(),
			Brand:     "Scania",
			Model:     "R450",
			YearModel: 2022,
			Type:      enums.VehicleTypeTruck,
			Price:     decimal.NewFromInt(450000),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	var gotLimit int
	store := &fakeStore{listPendingFn: func(_ context.Context, cursor *pagination.Cursor, limit int) ([]models.Vehicle, error) {
		gotLimit = limit
		return rows, nil
	}}
	svc, _ := NewService(ServiceParams{Repo: store})

	page, err := svc.PendingModeration(context.Background(), pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if gotLimit != 3 {
		t.Fatalf("expected buffered limit 3, got %d", gotLimit)
	}
	if len(page.Items) != 2 || !page.HasMore || page.NextCursor == "" {
		t.Fatalf("expected truncated page with cursor, got %+v", page)
	}

	cursor, err := pagination.ParseCursor(page.NextCursor)
	if err != nil {
		t.Fatalf("parse returned cursor: %v", err)
	}
	if cursor.ID != rows[1].ID {
		t.Fatalf("cursor should point at last returned row")
	}
}

func TestModerate_RejectsPendingOutcome(t *testing.T) {
	store := &fakeStore{updateStatusFn: func(context.Context, uuid.UUID, enums.ModerationStatus) error {
		t.Fatalf("update must not run for invalid outcome")
		return nil
	}}
	svc, _ := NewService(ServiceParams{Repo: store})

	err := svc.Moderate(context.Background(), uuid.New(), enums.ModerationStatusPending)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
