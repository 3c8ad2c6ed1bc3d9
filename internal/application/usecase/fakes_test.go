package usecase_test

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
	"github.com/buildmate/buildmate-api/pkg/logger"
)

// In-memory fakes for the repository ports. Only what the use cases under
// test touch is implemented with real behavior; list views return canned data.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type fakeMaterialRepo struct {
	byID map[string]*entity.Material
}

func newFakeMaterialRepo(materials ...*entity.Material) *fakeMaterialRepo {
	f := &fakeMaterialRepo{byID: make(map[string]*entity.Material)}
	for _, m := range materials {
		f.byID[m.ID] = m
	}
	return f
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) List(_ context.Context, category string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.byID {
		if category == "" || m.Category == category {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) (int64, error) {
	if _, ok := f.byID[m.ID]; !ok {
		return 0, nil
	}
	f.byID[m.ID] = m
	return 1, nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

type fakePriceRepo struct {
	inserted []*entity.PriceRecord
}

func (f *fakePriceRepo) Insert(_ context.Context, record *entity.PriceRecord) error {
	cp := *record
	f.inserted = append(f.inserted, &cp)
	return nil
}

func (f *fakePriceRepo) CurrentByDistributor(_ context.Context, _ string) ([]repository.PriceItem, error) {
	return nil, nil
}

func (f *fakePriceRepo) CurrentWithInventory(_ context.Context, _ string) ([]repository.OwnPriceItem, error) {
	return nil, nil
}

func (f *fakePriceRepo) CurrentAll(_ context.Context) ([]repository.MarketPriceItem, error) {
	return nil, nil
}

func (f *fakePriceRepo) History(_ context.Context, distributorID, materialID string) ([]*entity.PriceRecord, error) {
	var out []*entity.PriceRecord
	for i := len(f.inserted) - 1; i >= 0; i-- {
		r := f.inserted[i]
		if r.DistributorID == distributorID && r.MaterialID == materialID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	created   []*entity.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *n
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeNotificationRepo) ListForRecipient(_ context.Context, userID, role string, limit int) ([]repository.NotificationItem, error) {
	var out []repository.NotificationItem
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		n := f.created[i]
		if n.ToUserID == userID || (n.ToRole == role && n.ToUserID == "") {
			out = append(out, repository.NotificationItem{Notification: *n})
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) UnreadCount(_ context.Context, userID, role string) (int64, error) {
	var count int64
	for _, n := range f.created {
		if !n.IsRead && (n.ToUserID == userID || (n.ToRole == role && n.ToUserID == "")) {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID, role string) (int64, error) {
	for _, n := range f.created {
		if n.ID == id && (n.ToUserID == userID || (n.ToRole == role && n.ToUserID == "")) {
			n.IsRead = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID, role string) error {
	for _, n := range f.created {
		if n.ToUserID == userID || (n.ToRole == role && n.ToUserID == "") {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id, userID, role string) (int64, error) {
	for i, n := range f.created {
		if n.ID == id && (n.ToUserID == userID || (n.ToRole == role && n.ToUserID == "")) {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeInquiryRepo struct {
	created []*entity.Inquiry
}

func (f *fakeInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	cp := *inquiry
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeInquiryRepo) ListReceived(_ context.Context, distributorID string) ([]repository.InquiryDetail, error) {
	var out []repository.InquiryDetail
	for i := len(f.created) - 1; i >= 0; i-- {
		if inq := f.created[i]; inq.DistributorID == distributorID {
			out = append(out, toDetail(inq))
		}
	}
	return out, nil
}

func (f *fakeInquiryRepo) ListSent(_ context.Context, consumerID string) ([]repository.InquiryDetail, error) {
	var out []repository.InquiryDetail
	for i := len(f.created) - 1; i >= 0; i-- {
		if inq := f.created[i]; inq.ConsumerID == consumerID {
			out = append(out, toDetail(inq))
		}
	}
	return out, nil
}

func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id, distributorID, status string) (int64, error) {
	for _, inq := range f.created {
		if inq.ID == id && inq.DistributorID == distributorID {
			inq.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func toDetail(inq *entity.Inquiry) repository.InquiryDetail {
	return repository.InquiryDetail{
		ID:            inq.ID,
		ConsumerID:    inq.ConsumerID,
		DistributorID: inq.DistributorID,
		MaterialID:    inq.MaterialID,
		Quantity:      inq.Quantity,
		Message:       inq.Message,
		Status:        inq.Status,
		CreatedAt:     inq.CreatedAt,
	}
}
