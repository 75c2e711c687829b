package qrcode

import (
	"bytes"
	"testing"

	"mycomart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func sampleOrder() *entity.ProviderOrder {
	return &entity.ProviderOrder{
		OrderID:  "rzp-1",
		Key:      "key_test",
		Amount:   897,
		Currency: "INR",
	}
}

func TestGeneratePaymentQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePaymentQR(sampleOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGeneratePaymentQR_AllRecoveryLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "bogus"} {
		t.Run(level, func(t *testing.T) {
			svc := NewQRCodeService(128, level)

			png, err := svc.GeneratePaymentQR(sampleOrder())
			require.NoError(t, err)
			assert.NotEmpty(t, png)
		})
	}
}
