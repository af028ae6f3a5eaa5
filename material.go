package trilight

// MaterialComponent is a classic Blinn-Phong material. Alpha below
// 1.0 routes the entity through the transparent pass, drawn after
// all opaque geometry with depth writes disabled.
type MaterialComponent struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
	Alpha     float32
}

func DefaultMaterial() MaterialComponent {
	return MaterialComponent{
		Ambient:   [3]float32{0.2, 0.2, 0.2},
		Diffuse:   [3]float32{0.8, 0.8, 0.8},
		Specular:  [3]float32{1.0, 1.0, 1.0},
		Shininess: 50.0,
		Alpha:     1.0,
	}
}

// GoldMaterial returns the measured gold coefficients from the
// classic OpenGL material tables.
func GoldMaterial() MaterialComponent {
	return MaterialComponent{
		Ambient:   [3]float32{0.24725, 0.1995, 0.0745},
		Diffuse:   [3]float32{0.75164, 0.60648, 0.22648},
		Specular:  [3]float32{0.628281, 0.555802, 0.366065},
		Shininess: 128.0,
		Alpha:     1.0,
	}
}

// GlassMaterial is a grey semi-transparent material whose alpha is
// animated at runtime by the pulse module.
func GlassMaterial() MaterialComponent {
	m := DefaultMaterial()
	m.Alpha = 0.9
	return m
}
