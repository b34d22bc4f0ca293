package recipe

import "github.com/hammamikhairi/resepi/internal/domain"

func rating(v float64) *float64 { return &v }

// Seed returns the built-in collection: Indonesian dishes followed by drinks.
func Seed() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "nasi-goreng",
			Name:        "Nasi Goreng",
			Type:        domain.TypeFood,
			ImageURL:    "https://images.resepi.id/nasi-goreng.jpg",
			Description: "Nasi goreng kampung dengan kecap manis dan telur ceplok.",
			Ingredients: []string{
				"2 piring nasi putih",
				"3 siung bawang merah",
				"2 siung bawang putih",
				"1 butir telur",
				"2 sdm kecap manis",
				"1 batang daun bawang",
				"garam secukupnya",
			},
			Steps: []string{
				"Haluskan bawang merah dan bawang putih.",
				"Tumis bumbu halus hingga harum.",
				"Masukkan telur, orak-arik sebentar.",
				"Tambahkan nasi, kecap manis dan garam, aduk rata.",
				"Taburi daun bawang dan sajikan panas.",
			},
			Rating: rating(4.9),
		},
		{
			ID:          "rendang",
			Name:        "Rendang Daging",
			Type:        domain.TypeFood,
			ImageURL:    "https://images.resepi.id/rendang.jpg",
			Description: "Daging sapi dimasak lama dalam santan dan rempah hingga kering.",
			Ingredients: []string{
				"1 kg daging sapi",
				"1 liter santan",
				"10 butir bawang merah",
				"5 siung bawang putih",
				"3 batang serai",
				"5 lembar daun jeruk",
				"2 cm lengkuas",
				"100 gr cabai merah",
			},
			Steps: []string{
				"Potong daging sesuai selera.",
				"Haluskan bawang, cabai dan lengkuas.",
				"Rebus santan bersama bumbu halus, serai dan daun jeruk.",
				"Masukkan daging, masak dengan api kecil sambil diaduk.",
				"Masak hingga santan mengering dan bumbu berwarna gelap.",
			},
			Rating: rating(5),
		},
		{
			ID:       "soto-ayam",
			Name:     "Soto Ayam",
			Type:     domain.TypeFood,
			ImageURL: "https://images.resepi.id/soto-ayam.jpg",
			Ingredients: []string{
				"500 gr ayam",
				"2 liter air",
				"3 cm kunyit",
				"2 batang serai",
				"100 gr tauge",
				"2 butir telur rebus",
				"1 buah jeruk nipis",
			},
			Steps: []string{
				"Rebus ayam hingga matang, suwir dagingnya.",
				"Tumis kunyit dan serai, masukkan ke kaldu.",
				"Tata tauge, ayam suwir dan telur di mangkuk.",
				"Siram dengan kuah panas dan beri perasan jeruk nipis.",
			},
		},
		{
			ID:          "gado-gado",
			Name:        "Gado-gado",
			Type:        domain.TypeFood,
			ImageURL:    "https://images.resepi.id/gado-gado.jpg",
			Description: "Sayuran rebus dengan saus kacang yang gurih.",
			Ingredients: []string{
				"200 gr kacang tanah",
				"100 gr tauge",
				"1 ikat kangkung",
				"2 buah kentang",
				"1 papan tempe",
				"2 sdm gula merah",
				"1 buah jeruk nipis",
			},
			Steps: []string{
				"Goreng kacang tanah lalu haluskan bersama gula merah.",
				"Rebus tauge, kangkung dan kentang.",
				"Goreng tempe, potong-potong.",
				"Tata sayuran dan siram saus kacang.",
			},
			Rating: rating(4.7),
		},
		{
			ID:       "nasi-uduk",
			Name:     "Nasi Uduk",
			Type:     domain.TypeFood,
			ImageURL: "https://images.resepi.id/nasi-uduk.jpg",
			Ingredients: []string{
				"2 cangkir beras",
				"400 ml santan",
				"2 lembar daun salam",
				"1 batang serai",
				"garam secukupnya",
			},
			Steps: []string{
				"Cuci beras hingga bersih.",
				"Didihkan santan dengan daun salam, serai dan garam.",
				"Masak beras bersama santan hingga terserap.",
				"Kukus nasi selama 20 menit.",
			},
		},
		{
			ID:          "sate-ayam",
			Name:        "Sate Ayam",
			Type:        domain.TypeFood,
			ImageURL:    "https://images.resepi.id/sate-ayam.jpg",
			Description: "Sate ayam bakar dengan bumbu kacang dan kecap.",
			Ingredients: []string{
				"500 gr ayam",
				"150 gr kacang tanah",
				"3 sdm kecap manis",
				"2 siung bawang putih",
				"1 buah jeruk nipis",
			},
			Steps: []string{
				"Potong ayam dadu, tusuk dengan tusukan sate.",
				"Lumuri kecap manis dan bawang putih.",
				"Bakar sambil dibolak-balik hingga matang.",
				"Sajikan dengan bumbu kacang dan perasan jeruk nipis.",
			},
			Rating: rating(4.8),
		},
		{
			ID:          "es-teh",
			Name:        "Es Teh Manis",
			Type:        domain.TypeBeverage,
			ImageURL:    "https://images.resepi.id/es-teh.jpg",
			Description: "Teh manis dingin teman makan siang.",
			Ingredients: []string{
				"2 kantong teh",
				"500 ml air panas",
				"3 sdm gula pasir",
				"es batu secukupnya",
			},
			Steps: []string{
				"Seduh teh dengan air panas selama 5 menit.",
				"Larutkan gula ke dalam teh.",
				"Tuang ke gelas berisi es batu.",
			},
			Rating: rating(4.6),
		},
		{
			ID:       "es-cendol",
			Name:     "Es Cendol",
			Type:     domain.TypeBeverage,
			ImageURL: "https://images.resepi.id/es-cendol.jpg",
			Ingredients: []string{
				"200 gr cendol",
				"200 ml santan",
				"100 gr gula merah",
				"1 lembar daun pandan",
				"es batu secukupnya",
			},
			Steps: []string{
				"Rebus gula merah dengan daun pandan hingga menjadi sirup.",
				"Masak santan dengan sedikit garam, dinginkan.",
				"Tata cendol, sirup gula merah, santan dan es batu di gelas.",
			},
		},
		{
			ID:          "wedang-jahe",
			Name:        "Wedang Jahe",
			Type:        domain.TypeBeverage,
			ImageURL:    "https://images.resepi.id/wedang-jahe.jpg",
			Description: "Minuman jahe hangat untuk malam yang dingin.",
			Ingredients: []string{
				"100 gr jahe",
				"1 liter air",
				"2 batang serai",
				"100 gr gula merah",
			},
			Steps: []string{
				"Bakar jahe sebentar lalu memarkan.",
				"Rebus air bersama jahe, serai dan gula merah.",
				"Saring dan sajikan hangat.",
			},
			Rating: rating(4.9),
		},
		{
			ID:       "es-kelapa-muda",
			Name:     "Es Kelapa Muda",
			Type:     domain.TypeBeverage,
			ImageURL: "https://images.resepi.id/es-kelapa.jpg",
			Ingredients: []string{
				"1 buah kelapa muda",
				"2 sdm sirup merah",
				"es batu secukupnya",
			},
			Steps: []string{
				"Kerok daging kelapa muda, simpan airnya.",
				"Campur air kelapa, daging kelapa dan sirup.",
				"Tambahkan es batu.",
			},
		},
		{
			ID:          "bandrek",
			Name:        "Bandrek",
			Type:        domain.TypeBeverage,
			ImageURL:    "https://images.resepi.id/bandrek.jpg",
			Description: "Minuman rempah khas Sunda dengan susu kental manis.",
			Ingredients: []string{
				"50 gr jahe",
				"1 batang kayu manis",
				"3 butir cengkeh",
				"750 ml air",
				"3 sdm susu kental manis",
				"100 gr gula merah",
			},
			Steps: []string{
				"Rebus air dengan jahe, kayu manis dan cengkeh.",
				"Masukkan gula merah, aduk hingga larut.",
				"Saring, tuang ke gelas dan tambahkan susu kental manis.",
			},
		},
	}
}
