package colormap

// rgbStops builds gradient stops from (t, r, g, b) quadruples.
func rgbStops(v ...[4]float64) []Stop {
	stops := make([]Stop, len(v))
	for i, s := range v {
		stops[i] = Stop{T: s[0], Color: RGB(s[1], s[2], s[3])}
	}
	return stops
}

type hexStop struct {
	t   float64
	hex string
}

func hexStops(v ...hexStop) []Stop {
	stops := make([]Stop, len(v))
	for i, s := range v {
		stops[i] = Stop{T: s.t, Color: mustHex(s.hex)}
	}
	return stops
}

type hexBand struct {
	hex    string
	weight float64
}

func hexBanded(count, smoothness float64, v ...hexBand) Banded {
	bands := make([]Band, len(v))
	for i, b := range v {
		bands[i] = Band{Color: mustHex(b.hex), Weight: b.weight}
	}
	return Banded{Bands: bands, Count: count, Smoothness: smoothness}
}

func mustGradient(name string, stops []Stop) *Map {
	m, err := NewGradient(name, stops)
	if err != nil {
		panic(err)
	}
	return m
}

func mustBanded(name string, def Banded) *Map {
	m, err := NewBanded(name, def)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	pastelBands = hexBanded(6, 0.18,
		hexBand{"#FFF7FB", 0.85},
		hexBand{"#FFB7CD", 1},
		hexBand{"#FFD39C", 1},
		hexBand{"#BFD8FF", 1},
		hexBand{"#BDF7DE", 1},
		hexBand{"#FFF7FB", 0.85},
	)

	goldBands = hexBanded(5, 0.12,
		hexBand{"#FFFFFF", 1},
		hexBand{"#FFF1B0", 1},
		hexBand{"#FFC300", 1},
		hexBand{"#B8860B", 1},
		hexBand{"#FFC300", 1},
		hexBand{"#FFF1B0", 1},
		hexBand{"#FFFFFF", 1},
	)
)

// builtinMaps returns the built-in maps in display order. Turbo comes first
// and is the default.
func builtinMaps() []*Map {
	return []*Map{
		mustGradient("Turbo", rgbStops(
			[4]float64{0.00, 48, 18, 59},
			[4]float64{0.10, 50, 44, 125},
			[4]float64{0.20, 32, 96, 189},
			[4]float64{0.30, 41, 158, 179},
			[4]float64{0.40, 93, 201, 99},
			[4]float64{0.50, 177, 222, 44},
			[4]float64{0.60, 236, 199, 24},
			[4]float64{0.70, 250, 144, 25},
			[4]float64{0.80, 243, 85, 38},
			[4]float64{0.90, 206, 41, 57},
			[4]float64{1.00, 122, 4, 3},
		)),
		mustGradient("Viridis", rgbStops(
			[4]float64{0, 68, 1, 84},
			[4]float64{0.25, 59, 82, 139},
			[4]float64{0.5, 33, 145, 140},
			[4]float64{0.75, 94, 201, 98},
			[4]float64{1, 253, 231, 37},
		)),
		mustGradient("Magma", rgbStops(
			[4]float64{0, 0, 0, 4},
			[4]float64{0.25, 78, 18, 123},
			[4]float64{0.5, 182, 54, 121},
			[4]float64{0.75, 251, 136, 97},
			[4]float64{1, 252, 253, 191},
		)),
		mustGradient("Gray", rgbStops(
			[4]float64{0, 0, 0, 0},
			[4]float64{1, 255, 255, 255},
		)),
		mustGradient("Ocean", rgbStops(
			[4]float64{0, 0, 0, 0},
			[4]float64{0.25, 0, 20, 70},
			[4]float64{0.5, 0, 90, 160},
			[4]float64{0.75, 40, 180, 220},
			[4]float64{1, 220, 250, 255},
		)),
		mustGradient("H&E", rgbStops(
			[4]float64{0, 20, 10, 30},
			[4]float64{0.20, 60, 40, 120},
			[4]float64{0.45, 190, 90, 180},
			[4]float64{0.70, 245, 170, 210},
			[4]float64{1, 255, 245, 250},
		)),
		mustGradient("Giemsa", rgbStops(
			[4]float64{0, 10, 8, 30},
			[4]float64{0.25, 30, 60, 140},
			[4]float64{0.50, 80, 140, 170},
			[4]float64{0.75, 210, 180, 120},
			[4]float64{1, 250, 245, 220},
		)),
		mustGradient("Gram", rgbStops(
			[4]float64{0, 15, 10, 20},
			[4]float64{0.30, 90, 40, 140},
			[4]float64{0.55, 160, 90, 210},
			[4]float64{0.78, 210, 160, 80},
			[4]float64{1, 245, 245, 235},
		)),
		mustGradient("PAS", rgbStops(
			[4]float64{0, 15, 8, 8},
			[4]float64{0.28, 120, 30, 70},
			[4]float64{0.55, 220, 120, 160},
			[4]float64{0.78, 245, 210, 120},
			[4]float64{1, 255, 250, 235},
		)),
		mustGradient("Trichrome", rgbStops(
			[4]float64{0, 5, 20, 30},
			[4]float64{0.25, 10, 70, 120},
			[4]float64{0.50, 40, 140, 160},
			[4]float64{0.75, 170, 190, 120},
			[4]float64{1, 245, 245, 230},
		)),
		mustGradient("DAB", rgbStops(
			[4]float64{0, 5, 5, 5},
			[4]float64{0.25, 60, 40, 20},
			[4]float64{0.50, 120, 80, 40},
			[4]float64{0.75, 190, 150, 90},
			[4]float64{1, 250, 245, 235},
		)),
		mustGradient("Fluorescein", rgbStops(
			[4]float64{0, 0, 0, 0},
			[4]float64{0.15, 0, 30, 10},
			[4]float64{0.40, 0, 120, 40},
			[4]float64{0.70, 60, 220, 90},
			[4]float64{1, 230, 255, 240},
		)),
		mustGradient("Toluidine", rgbStops(
			[4]float64{0, 5, 5, 20},
			[4]float64{0.25, 30, 30, 110},
			[4]float64{0.50, 80, 90, 190},
			[4]float64{0.75, 150, 170, 220},
			[4]float64{1, 245, 250, 255},
		)),
		mustGradient("Safranin+FG", rgbStops(
			[4]float64{0, 10, 5, 5},
			[4]float64{0.25, 160, 40, 60},
			[4]float64{0.50, 220, 120, 90},
			[4]float64{0.72, 80, 160, 90},
			[4]float64{1, 235, 250, 235},
		)),
		mustGradient("Ice → Cyan → White", hexStops(
			hexStop{0, "#DFF6FF"},
			hexStop{0.45, "#6FD3FF"},
			hexStop{0.75, "#00AAFF"},
			hexStop{1, "#FFFFFF"},
		)),
		mustGradient("White → Indigo", hexStops(
			hexStop{0, "#FFFFFF"},
			hexStop{0.35, "#C8D0FF"},
			hexStop{0.7, "#6B82FF"},
			hexStop{1, "#2F3FAE"},
		)),
		mustGradient("Sand → Coral → Rose", hexStops(
			hexStop{0, "#FFF6E5"},
			hexStop{0.45, "#FFC4A3"},
			hexStop{0.75, "#FF7B89"},
			hexStop{1, "#C9184A"},
		)),
		mustGradient("Mint→Teal→Cyan", hexStops(
			hexStop{0, "#F0FFF7"},
			hexStop{0.4, "#8EF6D0"},
			hexStop{0.72, "#1BC5BD"},
			hexStop{1, "#087F8C"},
		)),
		mustGradient("White → Gold", hexStops(
			hexStop{0, "#FFFFFF"},
			hexStop{0.35, "#FFF1B0"},
			hexStop{0.7, "#FFC300"},
			hexStop{1, "#B8860B"},
		)),
		mustGradient("Blue↔White↔Orange", hexStops(
			hexStop{0, "#6FA8FF"},
			hexStop{0.5, "#FFFFFF"},
			hexStop{1, "#FFB366"},
		)),
		mustGradient("Gray→White→Laven", hexStops(
			hexStop{0, "#CFD8DC"},
			hexStop{0.5, "#FFFFFF"},
			hexStop{1, "#D8B4F8"},
		)),
		mustBanded("Pastel 5-band soft", pastelBands),
		mustBanded("Gold contour bands", goldBands),
	}
}

func builtinAliases() []RegistryOption {
	return []RegistryOption{
		WithAlias("ice_cyan_white", "Ice → Cyan → White"),
		WithAlias("white_indigo", "White → Indigo"),
		WithAlias("sand_coral_rose", "Sand → Coral → Rose"),
		WithAlias("mint_teal_cyan", "Mint→Teal→Cyan"),
		WithAlias("white_gold", "White → Gold"),
		WithAlias("blue_white_orange_soft", "Blue↔White↔Orange"),
		WithAlias("gray_white_lavender_soft", "Gray→White→Laven"),
		WithAlias("pastel_5_band_contour", "Pastel 5-band soft"),
		WithAlias("gold_contour_bands", "Gold contour bands"),
		WithDefault(DefaultName),
	}
}
