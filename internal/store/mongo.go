package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	colRomance  = "romance_reports"
	colPlatform = "platform_reports"
	colVendor   = "vendor_reports"
	colAnalysts = "analysts"
)

// MongoStore keeps reports and analysts in MongoDB, one collection per report type.
type MongoStore struct {
	db  *mongo.Database
	now func() time.Time
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db, now: time.Now}
}

func (s *MongoStore) collection(kind models.ReportType) (*mongo.Collection, error) {
	switch kind {
	case models.ReportTypeRomance:
		return s.db.Collection(colRomance), nil
	case models.ReportTypePlatform:
		return s.db.Collection(colPlatform), nil
	case models.ReportTypeVendor:
		return s.db.Collection(colVendor), nil
	}
	return nil, fmt.Errorf("unknown report type %q", kind)
}

// EnsureIndexes creates the listing and filtering indexes. Failures are
// collected so one bad index does not hide the others.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ictx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []string
	for _, name := range []string{colRomance, colPlatform, colVendor} {
		_, err := s.db.Collection(name).Indexes().CreateMany(ictx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "submissionDate", Value: -1}}},
			{Keys: bson.D{{Key: "riskAssessment.riskLevel", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		})
		if err != nil {
			errs = append(errs, name+": "+err.Error())
		}
	}
	if _, err := s.db.Collection(colAnalysts).Indexes().CreateOne(ictx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		errs = append(errs, colAnalysts+": "+err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, r models.Report) error {
	col, err := s.collection(r.Type())
	if err != nil {
		return err
	}
	stamp(r, s.now())

	if _, err := col.InsertOne(ctx, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create %s report: %w", r.Type(), err)
	}
	return nil
}

// stamp fills the bookkeeping times gorm would otherwise maintain.
func stamp(r models.Report, now time.Time) {
	switch v := r.(type) {
	case *models.RomanceReport:
		v.CreatedAt, v.UpdatedAt = now, now
	case *models.PlatformReport:
		v.CreatedAt, v.UpdatedAt = now, now
	case *models.VendorReport:
		v.CreatedAt, v.UpdatedAt = now, now
	}
}

func (s *MongoStore) FindByID(ctx context.Context, kind models.ReportType, id string) (models.Report, error) {
	col, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	r, _ := newReport(kind)
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s report: %w", kind, err)
	}
	return r, nil
}

func (s *MongoStore) List(ctx context.Context, kind models.ReportType) ([]models.Report, error) {
	col, err := s.collection(kind)
	if err != nil {
		return nil, err
	}

	cur, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "submissionDate", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list %s reports: %w", kind, err)
	}
	defer cur.Close(ctx)

	switch kind {
	case models.ReportTypeRomance:
		return decodeAll[models.RomanceReport](ctx, cur)
	case models.ReportTypePlatform:
		return decodeAll[models.PlatformReport](ctx, cur)
	default:
		return decodeAll[models.VendorReport](ctx, cur)
	}
}

func decodeAll[T any, PT interface {
	*T
	models.Report
}](ctx context.Context, cur *mongo.Cursor) ([]models.Report, error) {
	var rows []T
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	out := make([]models.Report, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, kind models.ReportType, id string, status models.ReportStatus) (models.Report, error) {
	col, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	r, _ := newReport(kind)
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": s.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false),
	).Decode(r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s report status: %w", kind, err)
	}
	return r, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) CreateAnalyst(ctx context.Context, a *models.Analyst) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := s.now()
	a.CreatedAt, a.UpdatedAt = now, now

	if _, err := s.db.Collection(colAnalysts).InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create analyst: %w", err)
	}
	return nil
}

func (s *MongoStore) FindAnalystByEmail(ctx context.Context, email string) (*models.Analyst, error) {
	return s.findAnalyst(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindAnalystByID(ctx context.Context, id string) (*models.Analyst, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return s.findAnalyst(ctx, bson.M{"_id": id})
}

func (s *MongoStore) findAnalyst(ctx context.Context, filter bson.M) (*models.Analyst, error) {
	var a models.Analyst
	if err := s.db.Collection(colAnalysts).FindOne(ctx, filter).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find analyst: %w", err)
	}
	return &a, nil
}
