package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"purple-day/backend/internal/model"
)

func setupTestHolidayService(provider HolidayProvider) (HolidayService, *testRepos) {
	repos := newTestRepos()
	svc := NewHolidayService(testConfig(), repos.toRepository(), provider, zap.NewNop())
	svc.(*holidayService).now = func() time.Time { return testToday }
	return svc, repos
}

func TestHolidayService_Sync_Success(t *testing.T) {
	provider := &mockHolidayProvider{
		holidays: []model.Holiday{
			{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Natal"},
		},
	}
	svc, repos := setupTestHolidayService(provider)

	resp, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("同步失败: %v", err)
	}

	// 数据源 1 条 + 波尔图覆盖项 1 条
	if resp.Imported != 2 {
		t.Errorf("导入数量 = %d, 期望 2", resp.Imported)
	}
	if resp.Year != 2025 || resp.Region != "PT" {
		t.Errorf("同步元信息 = %d/%s, 期望 2025/PT", resp.Year, resp.Region)
	}
	if _, ok := repos.holiday.holidays["2025-12-25"]; !ok {
		t.Error("数据源假期未入库")
	}
}

func TestHolidayService_Sync_PortoOverride(t *testing.T) {
	svc, repos := setupTestHolidayService(&mockHolidayProvider{})

	if _, err := svc.Sync(context.Background()); err != nil {
		t.Fatalf("同步失败: %v", err)
	}

	h, ok := repos.holiday.holidays["2025-06-24"]
	if !ok {
		t.Fatal("波尔图 6 月 24 日假期未入库")
	}
	if h.Name != "Festa de São João do Porto" {
		t.Errorf("假期名称 = %s", h.Name)
	}
}

func TestHolidayService_Sync_UpsertOverwrites(t *testing.T) {
	provider := &mockHolidayProvider{
		holidays: []model.Holiday{
			{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Natal (atualizado)"},
		},
	}
	svc, repos := setupTestHolidayService(provider)
	repos.holiday.holidays["2025-12-25"] = model.Holiday{
		Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Natal",
	}

	if _, err := svc.Sync(context.Background()); err != nil {
		t.Fatalf("同步失败: %v", err)
	}

	if got := repos.holiday.holidays["2025-12-25"].Name; got != "Natal (atualizado)" {
		t.Errorf("已存在日期应覆盖名称，实际 %s", got)
	}
}

func TestHolidayService_Sync_ProviderUnavailable(t *testing.T) {
	provider := &mockHolidayProvider{fetchErr: errors.New("connection refused")}
	svc, repos := setupTestHolidayService(provider)

	_, err := svc.Sync(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("期望 ErrProviderUnavailable, 实际 %v", err)
	}
	if len(repos.holiday.holidays) != 0 {
		t.Error("数据源失败时不应写入任何假期")
	}
}

// ════════════════════════════════════════════════════════════
// Nager.Date 数据源测试
// ════════════════════════════════════════════════════════════

func TestNagerProvider_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PublicHolidays/2025/PT" {
			t.Errorf("请求路径 = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "2025-01-01", "localName": "Ano Novo", "name": "New Year's Day"},
			{"date": "2025-04-25", "localName": "", "name": "Freedom Day"}
		]`))
	}))
	defer server.Close()

	provider := &nagerProvider{client: server.Client(), baseURL: server.URL}

	holidays, err := provider.Fetch(context.Background(), 2025, "PT")
	if err != nil {
		t.Fatalf("拉取失败: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("假期数量 = %d, 期望 2", len(holidays))
	}
	if holidays[0].Name != "Ano Novo" {
		t.Errorf("应优先使用本地名称，实际 %s", holidays[0].Name)
	}
	if holidays[1].Name != "Freedom Day" {
		t.Errorf("本地名称为空时回退英文名称，实际 %s", holidays[1].Name)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !holidays[0].Date.Equal(want) {
		t.Errorf("日期 = %v, 期望 %v", holidays[0].Date, want)
	}
}

func TestNagerProvider_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := &nagerProvider{client: server.Client(), baseURL: server.URL}

	if _, err := provider.Fetch(context.Background(), 2025, "PT"); err == nil {
		t.Fatal("非 200 响应应返回错误")
	}
}
