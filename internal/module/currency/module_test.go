package currency

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Currency{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	m := NewModule(db, pkg.PageLimits{DefaultPageSize: 10, MaxPageSize: 100})
	m.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func listPage(t *testing.T, r *gin.Engine, query string) *domain.Page[domain.Currency] {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies?"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("query %q status=%d body=%s", query, w.Code, w.Body.String())
	}

	var resp struct {
		Data domain.Page[domain.Currency] `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &resp.Data
}

func seedCurrencies(t *testing.T, r *gin.Engine, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		body := fmt.Sprintf(`{"code":"C%02d","name":"Currency %02d","decimalPlaces":2}`, i, i)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/currencies", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
	}
}

func TestCurrencyPagination(t *testing.T) {
	r := setupRouter(t)
	seedCurrencies(t, r, 25)

	seen := make(map[uint]bool)
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page := listPage(t, r, fmt.Sprintf("pageNumber=%d&pageSize=10", pageNum))

		if page.TotalCount != 25 {
			t.Errorf("page %d TotalCount=%d; want 25", pageNum, page.TotalCount)
		}
		if page.TotalPages != 3 {
			t.Errorf("page %d TotalPages=%d; want 3", pageNum, page.TotalPages)
		}
		if page.PageNumber != pageNum || page.PageSize != 10 {
			t.Errorf("page %d echoed (%d,%d)", pageNum, page.PageNumber, page.PageSize)
		}

		want := 10
		if pageNum == 3 {
			want = 5
		}
		if len(page.Items) != want {
			t.Fatalf("page %d has %d items; want %d", pageNum, len(page.Items), want)
		}
		for _, cu := range page.Items {
			if seen[cu.ID] {
				t.Fatalf("currency %d appeared twice across pages", cu.ID)
			}
			seen[cu.ID] = true
		}
	}
	if len(seen) != 25 {
		t.Errorf("pages covered %d distinct currencies; want 25", len(seen))
	}
}

func TestCurrencyPagination_PastEnd(t *testing.T) {
	r := setupRouter(t)
	seedCurrencies(t, r, 3)

	page := listPage(t, r, "pageNumber=5&pageSize=10")
	if len(page.Items) != 0 {
		t.Errorf("items=%d; want 0 past the end", len(page.Items))
	}
	if page.TotalCount != 3 || page.PageNumber != 5 || page.PageSize != 10 {
		t.Errorf("envelope=%+v; want echoed request with full total", page)
	}
}

func TestCurrencyPagination_SizeCap(t *testing.T) {
	r := setupRouter(t)
	seedCurrencies(t, r, 5)

	page := listPage(t, r, "pageSize=5000")
	if page.PageSize != 100 {
		t.Errorf("PageSize=%d; want capped at 100", page.PageSize)
	}
}

func TestCurrencySort(t *testing.T) {
	r := setupRouter(t)

	for _, body := range []string{
		`{"code":"USD","name":"US Dollar","decimalPlaces":2}`,
		`{"code":"EUR","name":"Euro","decimalPlaces":2}`,
		`{"code":"MAD","name":"Moroccan Dirham","decimalPlaces":2}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/currencies", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed: %s", w.Body.String())
		}
	}

	page := listPage(t, r, "sort=code:asc")
	got := make([]string, 0, len(page.Items))
	for _, cu := range page.Items {
		got = append(got, cu.Code)
	}
	want := []string{"EUR", "MAD", "USD"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v; want %v", got, want)
		}
	}

	// An unlisted sort field falls back to id order.
	page = listPage(t, r, "sort=symbol:desc")
	if page.Items[0].Code != "USD" {
		t.Errorf("first=%q; want USD (insertion order)", page.Items[0].Code)
	}
}
