package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

func ptr[T any](v T) *T { return &v }

func validWedding() models.CreateWeddingInput {
	return models.CreateWeddingInput{
		Title:       "Summer Wedding",
		BrideName:   "Alice",
		GroomName:   "Bob",
		WeddingDate: models.NewDate(mustDate("2024-06-15")),
		TotalBudget: ptr(models.MustMoney("25000.50")),
	}
}

func TestStruct_CreateWedding(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateWeddingInput)
		wantField string
	}{
		{name: "valid", mutate: func(*models.CreateWeddingInput) {}},
		{name: "zero budget is allowed", mutate: func(in *models.CreateWeddingInput) {
			in.TotalBudget = ptr(models.MoneyFromInt(0))
		}},
		{name: "missing title", mutate: func(in *models.CreateWeddingInput) { in.Title = "" }, wantField: "title"},
		{name: "missing groom", mutate: func(in *models.CreateWeddingInput) { in.GroomName = "" }, wantField: "groom_name"},
		{name: "missing date", mutate: func(in *models.CreateWeddingInput) { in.WeddingDate = models.Date{} }, wantField: "wedding_date"},
		{name: "missing budget", mutate: func(in *models.CreateWeddingInput) { in.TotalBudget = nil }, wantField: "total_budget"},
		{name: "negative budget", mutate: func(in *models.CreateWeddingInput) {
			in.TotalBudget = ptr(models.MustMoney("-1"))
		}, wantField: "total_budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validWedding()
			tt.mutate(&in)
			err := Struct(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.wantField, apperr.FieldOf(err))
		})
	}
}

func TestStruct_CreateGuest(t *testing.T) {
	base := func() models.CreateGuestInput {
		return models.CreateGuestInput{WeddingID: 1, Name: "Carol", PlusOne: ptr(false)}
	}

	tests := []struct {
		name      string
		mutate    func(*models.CreateGuestInput)
		wantField string
	}{
		{name: "valid", mutate: func(*models.CreateGuestInput) {}},
		{name: "valid email", mutate: func(in *models.CreateGuestInput) { in.Email = ptr("carol@example.com") }},
		{name: "bad email", mutate: func(in *models.CreateGuestInput) { in.Email = ptr("not-an-email") }, wantField: "email"},
		{name: "plus_one missing", mutate: func(in *models.CreateGuestInput) { in.PlusOne = nil }, wantField: "plus_one"},
		{name: "table zero", mutate: func(in *models.CreateGuestInput) { in.TableNumber = ptr(0) }, wantField: "table_number"},
		{name: "table negative", mutate: func(in *models.CreateGuestInput) { in.TableNumber = ptr(-3) }, wantField: "table_number"},
		{name: "wedding id zero", mutate: func(in *models.CreateGuestInput) { in.WeddingID = 0 }, wantField: "wedding_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(&in)
			err := Struct(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantField, apperr.FieldOf(err))
		})
	}
}

func TestStruct_UpdateInputs(t *testing.T) {
	t.Run("empty title rejected", func(t *testing.T) {
		err := Struct(models.UpdateTaskInput{ID: 1, Title: models.Some("")})
		assert.Equal(t, "title", apperr.FieldOf(err))
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		err := Struct(models.UpdateTaskInput{ID: 1, Priority: models.Some(models.Priority("urgent"))})
		require.Error(t, err)
		assert.Equal(t, "priority", apperr.FieldOf(err))
		assert.Contains(t, err.Error(), "low, medium, high")
	})

	t.Run("absent fields pass", func(t *testing.T) {
		assert.NoError(t, Struct(models.UpdateTaskInput{ID: 1}))
		assert.NoError(t, Struct(models.UpdateBudgetItemInput{ID: 1}))
	})

	t.Run("null actual cost passes", func(t *testing.T) {
		assert.NoError(t, Struct(models.UpdateBudgetItemInput{ID: 1, ActualCost: models.Null[models.Money]()}))
	})

	t.Run("negative estimated cost rejected", func(t *testing.T) {
		err := Struct(models.UpdateBudgetItemInput{ID: 1, EstimatedCost: models.Some(models.MustMoney("-0.01"))})
		assert.Equal(t, "estimated_cost", apperr.FieldOf(err))
	})

	t.Run("negative gift rejected", func(t *testing.T) {
		err := Struct(models.UpdateGuestGiftInput{ID: 1, GiftValue: models.Value(models.MustMoney("-5"))})
		assert.Equal(t, "gift_value", apperr.FieldOf(err))
	})

	t.Run("rsvp status required", func(t *testing.T) {
		err := Struct(models.UpdateGuestRsvpInput{ID: 1})
		assert.Equal(t, "rsvp_status", apperr.FieldOf(err))
	})

	t.Run("rsvp status must be known", func(t *testing.T) {
		err := Struct(models.UpdateGuestRsvpInput{ID: 1, RSVPStatus: "maybe"})
		assert.Equal(t, "rsvp_status", apperr.FieldOf(err))
	})

	t.Run("missing id", func(t *testing.T) {
		err := Struct(models.UpdateGuestRsvpInput{RSVPStatus: models.RSVPAttending})
		assert.Equal(t, "id", apperr.FieldOf(err))
	})
}

func TestDecode(t *testing.T) {
	t.Run("wrong type names the field", func(t *testing.T) {
		var in models.CreateWeddingInput
		err := Decode([]byte(`{"title":"x","total_budget":"a lot"}`), &in)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, "total_budget", apperr.FieldOf(err))
		assert.Contains(t, err.Error(), "expected number")
	})

	t.Run("quoted amounts are rejected", func(t *testing.T) {
		tests := []struct {
			field string
			raw   string
			dst   any
		}{
			{field: "total_budget", raw: `{"title":"x","total_budget":"25000.50"}`, dst: &models.CreateWeddingInput{}},
			{field: "estimated_cost", raw: `{"wedding_id":1,"category":"Venue","item_name":"Hall","estimated_cost":"5000"}`, dst: &models.CreateBudgetItemInput{}},
			{field: "actual_cost", raw: `{"wedding_id":1,"estimated_cost":5000,"actual_cost":"4800"}`, dst: &models.CreateBudgetItemInput{}},
			{field: "estimated_cost", raw: `{"id":1,"estimated_cost":"5000"}`, dst: &models.UpdateBudgetItemInput{}},
			{field: "actual_cost", raw: `{"id":1,"actual_cost":"4800"}`, dst: &models.UpdateBudgetItemInput{}},
			{field: "gift_value", raw: `{"id":1,"gift_description":"Vase","gift_value":"150"}`, dst: &models.UpdateGuestGiftInput{}},
		}
		for _, tt := range tests {
			err := Decode([]byte(tt.raw), tt.dst)
			require.Error(t, err, tt.raw)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.field, apperr.FieldOf(err), tt.raw)
		}
	})

	t.Run("string where integer expected", func(t *testing.T) {
		var in models.TaskFilter
		err := Decode([]byte(`{"wedding_id":"one"}`), &in)
		assert.Equal(t, "wedding_id", apperr.FieldOf(err))
		assert.Contains(t, err.Error(), "expected integer")
	})

	t.Run("unparseable date", func(t *testing.T) {
		var in models.CreateWeddingInput
		err := Decode([]byte(`{"wedding_date":"someday"}`), &in)
		assert.Equal(t, "wedding_date", apperr.FieldOf(err))
		assert.Contains(t, err.Error(), "expected date")
	})

	t.Run("out of range timestamp", func(t *testing.T) {
		var in models.CreateTaskInput
		err := Decode([]byte(`{"wedding_id":1,"title":"x","due_date":1e30}`), &in)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, "due_date", apperr.FieldOf(err))
	})

	t.Run("null for non-nullable update field", func(t *testing.T) {
		var in models.UpdateTaskInput
		err := Decode([]byte(`{"id":1,"completed":null}`), &in)
		assert.Equal(t, "completed", apperr.FieldOf(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		var in models.CreateWeddingInput
		err := Decode([]byte(`{"title":`), &in)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		var in models.WeddingRef
		require.NoError(t, Decode([]byte(`{"wedding_id":3,"extra":true}`), &in))
		assert.Equal(t, int64(3), in.WeddingID)
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		var in models.WeddingRef
		require.NoError(t, Decode(nil, &in))
		err := Struct(in)
		assert.Equal(t, "wedding_id", apperr.FieldOf(err))
	})

	t.Run("tri-state fields", func(t *testing.T) {
		var in models.UpdateBudgetItemInput
		require.NoError(t, Decode([]byte(`{"id":2,"actual_cost":null,"paid":true}`), &in))
		assert.True(t, in.ActualCost.Set)
		assert.False(t, in.ActualCost.Valid)
		assert.True(t, in.Paid.Set)
		assert.False(t, in.Vendor.Set)
	})
}
