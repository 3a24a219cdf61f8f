package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sysadmin/sysadmin-api/internal/api/metrics"
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

func TestResourceHandler_CreateWithParent(t *testing.T) {
	e := newTestEcho()
	m := metrics.New(prometheus.NewRegistry())
	stub := &stubResourceService{
		saveFn: func(ctx context.Context, r domain.Resource) (int64, error) {
			if r.Name != "Users" || r.ParentID == nil || *r.ParentID != 1 {
				t.Fatalf("unexpected resource: %+v", r)
			}
			return 2, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/sys/resource", `{"name":"Users","type":1,"permission":"sys:user","parentId":1,"url":"/sys/user"}`)

	if err := NewResourceHandler(stub, m).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "2" {
		t.Fatalf("expected id 2, got %q", rec.Body.String())
	}
	if got := testutil.ToFloat64(m.RecordsCreatedTotal.WithLabelValues("resource")); got != 1 {
		t.Fatalf("expected created counter 1, got %v", got)
	}
}

func TestResourceHandler_Create_RequiresName(t *testing.T) {
	e := newTestEcho()
	stub := &stubResourceService{
		saveFn: func(ctx context.Context, r domain.Resource) (int64, error) {
			t.Fatalf("should not be called")
			return 0, nil
		},
	}
	c, _ := newContext(e, http.MethodPost, "/sys/resource", `{"type":1}`)

	err := NewResourceHandler(stub, nil).Create(c)
	if domain.KindOf(err) != domain.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("expected json field name in message, got %q", err.Error())
	}
}

func TestResourceHandler_ListAndGet(t *testing.T) {
	e := newTestEcho()
	parent := int64(1)
	stub := &stubResourceService{
		listFn: func(ctx context.Context) ([]domain.Resource, error) {
			return []domain.Resource{{ID: 1, Name: "System"}, {ID: 2, Name: "Users", ParentID: &parent}}, nil
		},
		getFn: func(ctx context.Context, id int64) (*domain.Resource, error) {
			if id == 2 {
				return &domain.Resource{ID: 2, Name: "Users", ParentID: &parent}, nil
			}
			return nil, nil
		},
	}
	h := NewResourceHandler(stub, nil)

	c, rec := newContext(e, http.MethodGet, "/sys/resource", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list error: %v", err)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 2 || list[1]["parentId"] != float64(1) {
		t.Fatalf("unexpected list: %v", list)
	}

	c, rec = newContext(e, http.MethodGet, "/sys/resource/2", "", "id", "2")
	if err := h.Get(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodGet, "/sys/resource/3", "", "id", "3")
	if err := h.Get(c); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResourceHandler_UpdateAndDelete(t *testing.T) {
	e := newTestEcho()
	stub := &stubResourceService{
		modifyFn: func(ctx context.Context, r domain.Resource) (int64, error) {
			if r.ID != 2 || r.ParentID != nil {
				t.Fatalf("unexpected resource: %+v", r)
			}
			return 1, nil
		},
		deleteFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil },
	}
	h := NewResourceHandler(stub, nil)

	c, rec := newContext(e, http.MethodPut, "/sys/resource", `{"id":2,"name":"Accounts","type":1}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "1" {
		t.Fatalf("unexpected update body %q", rec.Body.String())
	}

	c, rec = newContext(e, http.MethodDelete, "/sys/resource/2", "", "id", "2")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "1" {
		t.Fatalf("unexpected delete body %q", rec.Body.String())
	}

	c, _ = newContext(e, http.MethodDelete, "/sys/resource/x", "", "id", "x")
	if err := h.Delete(c); domain.KindOf(err) != domain.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
