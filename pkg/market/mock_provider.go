package market

type mockProvider struct{}

// NewMock returns fixed quotes roughly tracking the seeded reference prices.
func NewMock() Provider { return &mockProvider{} }

func (m *mockProvider) Source() string { return "mock" }

func (m *mockProvider) CurrentPrices(region string) (map[string]float64, error) {
	return map[string]float64{
		"winter wheat":    15200,
		"spring wheat":    14200,
		"spring barley":   12500,
		"oats":            11500,
		"peas":            25500,
		"soybean":         36000,
		"sunflower":       46000,
		"spring rapeseed": 28500,
		"flax":            30500,
		"potato":          21000,
		"sugar beet":      18500,
		"grain corn":      12500,
		"buckwheat":       33000,
		"alfalfa":         18500,
	}, nil
}
