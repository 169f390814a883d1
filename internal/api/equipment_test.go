package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrirent/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() EquipmentForm {
	return EquipmentForm{
		Name:          "Combine harvester",
		Description:   "Class S790, well maintained",
		Condition:     ConditionBetter,
		RentalPrice:   "250",
		OwnerName:     "D. Seitkali",
		Address:       "4 Granary Lane",
		ContactNumber: "555-0199",
		Availability: DateRange{
			Start: Date{Year: 2026, Month: 9, Day: 1},
			End:   Date{Year: 2026, Month: 10, Day: 15},
		},
		Image: &ImageFile{Name: "harvester.jpg", Reader: strings.NewReader("jpegdata")},
	}
}

func TestCreateEquipmentRejectsMissingImageBeforeNetwork(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	form := validForm()
	form.Image = nil

	_, err := client.CreateEquipment(context.Background(), form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "image", validationErr.Field)
	assert.Equal(t, 0, requests, "validation must reject before any network call")
}

func TestEquipmentFormValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EquipmentForm)
		field  string
	}{
		{"missing name", func(f *EquipmentForm) { f.Name = "" }, "name"},
		{"missing description", func(f *EquipmentForm) { f.Description = "" }, "description"},
		{"missing price", func(f *EquipmentForm) { f.RentalPrice = "" }, "rentalPrice"},
		{"bad condition", func(f *EquipmentForm) { f.Condition = "Mint" }, "condition"},
		{"missing window", func(f *EquipmentForm) { f.Availability = DateRange{} }, "availabilityDate"},
		{"inverted window", func(f *EquipmentForm) {
			f.Availability.Start = Date{Year: 2026, Month: 11, Day: 1}
		}, "availabilityDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate(true)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	t.Run("image optional on update", func(t *testing.T) {
		form := validForm()
		form.Image = nil
		assert.NoError(t, form.Validate(false))
	})
}

func TestCreateEquipmentSendsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/equipment", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Combine harvester", r.FormValue("name"))
		assert.Equal(t, "Better", r.FormValue("condition"))
		assert.Equal(t, "250", r.FormValue("rentalPrice"))

		var window DateRange
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("availabilityDate")), &window))
		assert.Equal(t, Date{Year: 2026, Month: 9, Day: 1}, window.Start)
		assert.Equal(t, Date{Year: 2026, Month: 10, Day: 15}, window.End)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "harvester.jpg", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "jpegdata", string(data))

		json.NewEncoder(w).Encode(Equipment{ID: "eq1", Name: "Combine harvester"})
	}))
	defer srv.Close()

	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "T1"))

	client := New(srv.URL, store, NopNavigator)

	equipment, err := client.CreateEquipment(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, "eq1", equipment.ID)
}

func TestUpdateEquipmentOmitsImagePartWhenAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/equipment/eq1", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		assert.Error(t, err, "no image part expected")

		json.NewEncoder(w).Encode(Equipment{ID: "eq1"})
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	form := validForm()
	form.Image = nil

	_, err := client.UpdateEquipment(context.Background(), "eq1", form)
	require.NoError(t, err)
}

func TestAllEquipmentWorksWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"_id":"eq1","name":"Plough"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

	equipment, err := client.AllEquipment(context.Background())
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	assert.Equal(t, "Plough", equipment[0].Name)
}

func TestAllEquipmentCoercesMalformedPayloadToEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object payload", `{"message":"nothing here"}`},
		{"string payload", `"oops"`},
		{"null payload", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL, session.NewMemoryStore(), NopNavigator)

			equipment, err := client.AllEquipment(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, equipment)
			assert.Empty(t, equipment)
		})
	}
}

func TestDeleteEquipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/equipment/eq1", r.URL.Path)
		w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemoryStore(), NopNavigator)
	require.NoError(t, client.DeleteEquipment(context.Background(), "eq1"))
}
