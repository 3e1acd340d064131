package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/vehicle"
	"fleetflow-backend/internal/testutil/drivermock"
	"fleetflow-backend/internal/testutil/tripmock"
	"fleetflow-backend/internal/testutil/uowmock"
	"fleetflow-backend/internal/testutil/vehiclemock"
	"fleetflow-backend/internal/usecase/fleet"
)

func newVehicleServer(vehicles *vehiclemock.Repo, trips *tripmock.Repo) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewVehicleHandler(fleet.NewUsecase(vehicles, &drivermock.Repo{}, trips, uowmock.New()))
	e.POST("/vehicles", h.Create)
	e.GET("/vehicles/:id", h.Get)
	e.DELETE("/vehicles/:id", h.Delete)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestVehicleHandler_Create(t *testing.T) {
	vehicles := &vehiclemock.Repo{
		CreateFn: func(ctx context.Context, v *vehicle.Vehicle) error {
			v.ID = 11
			return nil
		},
	}
	e := newVehicleServer(vehicles, &tripmock.Repo{})

	t.Run("happy path normalizes the plate", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/vehicles",
			`{"model_name":"Hino 300","license_plate":"b-1234-xy","max_capacity_kg":1500}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		var got vehicle.Vehicle
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != 11 || got.LicensePlate != "B-1234-XY" || got.Status != vehicle.StatusAvailable {
			t.Fatalf("unexpected vehicle: %+v", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/vehicles", `{"model_name":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("validation failure reports the fields", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/vehicles",
			`{"license_plate":"B-1","max_capacity_kg":0,"status":"Parked"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !containsFieldMsg(resp.Details, "ModelName", "required") ||
			!containsFieldMsg(resp.Details, "Status", "Available, On Trip or In Shop") {
			t.Fatalf("missing field errors: %+v", resp.Details)
		}
	})
}

func TestVehicleHandler_Get(t *testing.T) {
	vehicles := &vehiclemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
			if id != 5 {
				return nil, vehicle.ErrNotFound
			}
			return &vehicle.Vehicle{ID: 5, ModelName: "Canter", LicensePlate: "B-5-AA", MaxCapacityKg: 900, Status: vehicle.StatusAvailable}, nil
		},
	}
	e := newVehicleServer(vehicles, &tripmock.Repo{})

	t.Run("found", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/vehicles/5", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
	})
	t.Run("unknown id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/vehicles/99", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
	t.Run("non-numeric id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/vehicles/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestVehicleHandler_Delete(t *testing.T) {
	deleted := false
	vehicles := &vehiclemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
			return &vehicle.Vehicle{ID: id}, nil
		},
		DeleteFn: func(ctx context.Context, id uint64) error {
			deleted = true
			return nil
		},
	}

	t.Run("vehicle with trip history is refused", func(t *testing.T) {
		trips := &tripmock.Repo{
			ExistsForVehicleFn: func(ctx context.Context, vehicleID uint64) (bool, error) { return true, nil },
		}
		rec := doJSON(newVehicleServer(vehicles, trips), http.MethodDelete, "/vehicles/5", "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
		if deleted {
			t.Fatalf("delete reached the store")
		}
	})

	t.Run("unused vehicle deletes", func(t *testing.T) {
		rec := doJSON(newVehicleServer(vehicles, &tripmock.Repo{}), http.MethodDelete, "/vehicles/5", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if !deleted {
			t.Fatalf("delete never reached the store")
		}
	})
}
