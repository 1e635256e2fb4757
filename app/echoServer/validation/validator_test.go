package validation

import (
	"testing"

	"github.com/Bennnhere/LendIt-app/model"
	"github.com/stretchr/testify/require"
)

func TestValidate_ListItemReq(t *testing.T) {
	v := New(NewValidate())

	require.NoError(t, v.Validate(model.ListItemReq{Name: "Drafter", Price: 10}))
	require.Error(t, v.Validate(model.ListItemReq{Name: "   ", Price: 10}))
	require.Error(t, v.Validate(model.ListItemReq{Name: "Drafter", Price: 0.5}))
	require.Error(t, v.Validate(model.ListItemReq{Price: 10}))
	require.Error(t, v.Validate(model.ListItemReq{Name: "Drafter", Price: 1e308}))
	require.NoError(t, v.Validate(model.ListItemReq{Name: "Drafter", Price: model.MaxPricePerHour}))
}

func TestValidate_FinishReq(t *testing.T) {
	v := New(NewValidate())

	require.NoError(t, v.Validate(model.FinishReq{}))
	require.NoError(t, v.Validate(model.FinishReq{Method: model.PayWallet}))
	require.Error(t, v.Validate(model.FinishReq{Method: "card"}))
}

func TestFields_ReportsOnlyFailingFields(t *testing.T) {
	v := New(NewValidate())

	err := v.Validate(model.ListItemReq{Name: "Drafter", Price: 100001})
	require.Equal(t, map[string]string{"price": "lte 100000"}, Fields(err))

	err = v.Validate(model.ListItemReq{Name: "  ", Price: 10})
	require.Equal(t, map[string]string{"name": "notblank"}, Fields(err))

	err = v.Validate(model.FinishReq{Method: "card"})
	require.Equal(t, map[string]string{"method": "oneof cash wallet"}, Fields(err))
}
