package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"purple-day/backend/internal/model"
	"purple-day/backend/internal/repository"
	pkgerrors "purple-day/backend/pkg/errors"
)

// ── Mock PurpleDayRepository ──

type mockPurpleDayRepo struct {
	days map[string]*model.PurpleDay

	// 注入存储层错误
	failList   bool
	failUpdate bool
}

func newMockPurpleDayRepo() *mockPurpleDayRepo {
	return &mockPurpleDayRepo{days: make(map[string]*model.PurpleDay)}
}

var errMockStorage = errors.New("存储层不可达")

func (m *mockPurpleDayRepo) Replace(_ context.Context, days []model.PurpleDay) error {
	m.days = make(map[string]*model.PurpleDay, len(days))
	for i := range days {
		d := days[i]
		if d.PurpleDayID == "" {
			d.PurpleDayID = "pd-" + d.OriginalDate.Format("20060102")
		}
		m.days[d.PurpleDayID] = &d
	}
	return nil
}

func (m *mockPurpleDayRepo) List(_ context.Context) ([]model.PurpleDay, error) {
	if m.failList {
		return nil, errMockStorage
	}
	result := make([]model.PurpleDay, 0, len(m.days))
	for _, d := range m.days {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OriginalDate.Before(result[j].OriginalDate)
	})
	return result, nil
}

func (m *mockPurpleDayRepo) ListActive(ctx context.Context) ([]model.PurpleDay, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var result []model.PurpleDay
	for _, d := range all {
		if d.Status != model.StatusCanceled {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockPurpleDayRepo) GetByID(_ context.Context, id string) (*model.PurpleDay, error) {
	if d, ok := m.days[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPurpleDayRepo) Update(_ context.Context, day *model.PurpleDay) error {
	if m.failUpdate {
		return errMockStorage
	}
	stored, ok := m.days[day.PurpleDayID]
	if !ok || stored.Version != day.Version {
		return pkgerrors.ErrOptimisticLock
	}
	cp := *day
	cp.Version = day.Version + 1
	m.days[day.PurpleDayID] = &cp
	day.Version = cp.Version
	return nil
}

// ── Mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays map[string]model.Holiday

	failDateSet bool
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[string]model.Holiday)}
}

func (m *mockHolidayRepo) Upsert(_ context.Context, holidays []model.Holiday) error {
	for _, h := range holidays {
		m.holidays[h.Date.Format("2006-01-02")] = h
	}
	return nil
}

func (m *mockHolidayRepo) List(_ context.Context) ([]model.Holiday, error) {
	result := make([]model.Holiday, 0, len(m.holidays))
	for _, h := range m.holidays {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *mockHolidayRepo) DateSet(_ context.Context) (map[string]struct{}, error) {
	if m.failDateSet {
		return nil, errMockStorage
	}
	set := make(map[string]struct{}, len(m.holidays))
	for key := range m.holidays {
		set[key] = struct{}{}
	}
	return set, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users: []model.User{
			{UserID: "user-1", Name: "张三", Email: "zhangsan@example.com"},
			{UserID: "user-2", Name: "李四", Email: "lisi@example.com"},
		},
	}
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) ListEmails(_ context.Context) ([]string, error) {
	emails := make([]string, 0, len(m.users))
	for _, u := range m.users {
		emails = append(emails, u.Email)
	}
	return emails, nil
}

// ── Mock Mailer ──

type sentMail struct {
	subject    string
	body       string
	recipients []string
}

type mockMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *mockMailer) Send(subject, body string, recipients []string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{subject: subject, body: body, recipients: recipients})
	return nil
}

// ── Mock HolidayProvider ──

type mockHolidayProvider struct {
	holidays []model.Holiday
	fetchErr error
}

func (m *mockHolidayProvider) Fetch(_ context.Context, _ int, _ string) ([]model.Holiday, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.holidays, nil
}

// ── 测试辅助 ──

type testRepos struct {
	purpleDay *mockPurpleDayRepo
	holiday   *mockHolidayRepo
	user      *mockUserRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		purpleDay: newMockPurpleDayRepo(),
		holiday:   newMockHolidayRepo(),
		user:      newMockUserRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		PurpleDay: r.purpleDay,
		Holiday:   r.holiday,
		User:      r.user,
	}
}
