package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCafeUpdateColumns(t *testing.T) {
	price := "£3.00"
	off := false
	upd := CafeUpdate{CoffeePrice: &price, HasWifi: &off}

	assert.False(t, upd.Empty())
	assert.Equal(t, map[string]any{"coffee_price": "£3.00", "has_wifi": false}, upd.Columns())

	assert.True(t, CafeUpdate{}.Empty())
	assert.Empty(t, CafeUpdate{}.Columns())
}

func TestCafeInputToCafe(t *testing.T) {
	yes, no := true, false
	in := CafeInput{
		Name: "Brew", MapURL: "m", ImgURL: "i", Location: "NY", Seats: "5",
		HasToilet: &yes, HasWifi: &no, HasSockets: &yes, CanTakeCalls: &no,
	}

	cafe := in.ToCafe()
	assert.Equal(t, Cafe{
		Name: "Brew", MapURL: "m", ImgURL: "i", Location: "NY", Seats: "5",
		HasToilet: true, HasSockets: true,
	}, cafe)
	assert.Equal(t, "cafe", cafe.TableName())
}
