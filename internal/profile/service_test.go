package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/google/uuid"
)

func addressBookService(t *testing.T, userID uuid.UUID, addresses []models.Address) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != fmt.Sprintf("/api/profile/%s/address", userID) {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(addresses)
	}))
	t.Cleanup(srv.Close)
	return NewService(adminapi.New(srv.URL, 2*time.Second))
}

func TestAddressByIDOwnershipByConstruction(t *testing.T) {
	userID := uuid.New()
	svc := addressBookService(t, userID, []models.Address{
		{ID: 1, RecipientName: "Amy", City: "Bandung"},
		{ID: 2, RecipientName: "Amy", City: "Jakarta", IsDefault: true},
	})

	got, err := svc.AddressByID(context.Background(), userID, 2)
	if err != nil {
		t.Fatalf("address by id: %v", err)
	}
	if got.City != "Jakarta" {
		t.Fatalf("wrong address picked: %+v", got)
	}

	// an id outside the user's own book is indistinguishable from missing
	if _, err := svc.AddressByID(context.Background(), userID, 99); !errors.Is(err, adminapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign address id, got %v", err)
	}
}

func TestDefaultAddress(t *testing.T) {
	userID := uuid.New()
	svc := addressBookService(t, userID, []models.Address{
		{ID: 1, City: "Bandung"},
		{ID: 2, City: "Jakarta", IsDefault: true},
	})

	got, err := svc.DefaultAddress(context.Background(), userID)
	if err != nil {
		t.Fatalf("default address: %v", err)
	}
	if got == nil || got.ID != 2 {
		t.Fatalf("expected address 2 as default, got %+v", got)
	}
}

func TestDefaultAddressNoneIsNotAnError(t *testing.T) {
	userID := uuid.New()
	svc := addressBookService(t, userID, []models.Address{{ID: 1, City: "Bandung"}})

	got, err := svc.DefaultAddress(context.Background(), userID)
	if err != nil {
		t.Fatalf("default address: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil when nothing is flagged default, got %+v", got)
	}
}

func TestUpdateSendsSparsePatch(t *testing.T) {
	userID := uuid.New()
	var patch map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/profile/"+userID.String() {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&patch)
		json.NewEncoder(w).Encode(models.User{ID: userID, FullName: "Amy L."})
	}))
	defer srv.Close()

	svc := NewService(adminapi.New(srv.URL, 2*time.Second))
	name := "Amy L."
	phone := "0812345"
	user, err := svc.Update(context.Background(), userID, UpdateParams{FullName: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.FullName != "Amy L." {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(patch) != 2 || patch["full_name"] != "Amy L." || patch["phone"] != "0812345" {
		t.Fatalf("patch must carry only the set fields, got %v", patch)
	}
}
