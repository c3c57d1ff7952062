package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/models"
)

type stubMappingService struct {
	getResult  *models.ImportMapping
	getErr     error
	getBank    string
	saveResult *models.ImportMapping
	saveErr    error
	saveBank   string
	saveCols   map[string]string
	saveCalled bool
}

func (s *stubMappingService) Get(ctx context.Context, bankName string) (*models.ImportMapping, error) {
	s.getBank = bankName
	return s.getResult, s.getErr
}

func (s *stubMappingService) Save(ctx context.Context, bankName string, columns map[string]string) (*models.ImportMapping, error) {
	s.saveCalled = true
	s.saveBank = bankName
	s.saveCols = columns
	return s.saveResult, s.saveErr
}

func TestGetMappingHandler(t *testing.T) {
	svc := &stubMappingService{
		getResult: &models.ImportMapping{BankName: "Chase", Columns: map[string]string{"Fecha": "date"}},
	}
	resp := &stubResponseHandler{}
	h := NewMappingHandlers(&Deps{ResponseHandler: resp, MappingSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/import-mappings?bankName=Chase", nil)
	rr := httptest.NewRecorder()

	h.GetMapping(rr, req)

	if svc.getBank != "Chase" {
		t.Fatalf("service received bank %q", svc.getBank)
	}
	if !resp.successCalled || resp.successStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	if m, ok := resp.successData.(*models.ImportMapping); !ok || m.BankName != "Chase" {
		t.Fatalf("unexpected response data: %#v", resp.successData)
	}
}

func TestGetMappingHandlerValidationError(t *testing.T) {
	svc := &stubMappingService{getErr: errs.NewValidationError("bankName is required")}
	resp := &stubResponseHandler{}
	h := NewMappingHandlers(&Deps{ResponseHandler: resp, MappingSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/import-mappings", nil)
	rr := httptest.NewRecorder()

	h.GetMapping(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError for missing bankName")
	}
}

func TestSaveMappingHandler(t *testing.T) {
	svc := &stubMappingService{
		saveResult: &models.ImportMapping{BankName: "Chase"},
	}
	resp := &stubResponseHandler{}
	h := NewMappingHandlers(&Deps{ResponseHandler: resp, MappingSvc: svc})

	body := `{"bankName":"Chase","mapping":{"Fecha":"date","Monto":"amount"}}`
	req := httptest.NewRequest(http.MethodPost, "/import-mappings", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.SaveMapping(rr, req)

	if !svc.saveCalled {
		t.Fatalf("expected Save to be called on service")
	}
	if svc.saveBank != "Chase" || svc.saveCols["Monto"] != "amount" {
		t.Fatalf("service received wrong arguments: %q %#v", svc.saveBank, svc.saveCols)
	}
	if !resp.successCalled {
		t.Fatalf("WriteSuccess not called")
	}
}

func TestSaveMappingHandlerInvalidJSON(t *testing.T) {
	svc := &stubMappingService{}
	resp := &stubResponseHandler{}
	h := NewMappingHandlers(&Deps{ResponseHandler: resp, MappingSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/import-mappings", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	h.SaveMapping(rr, req)

	if svc.saveCalled {
		t.Fatalf("service must not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError on invalid JSON")
	}
}
