package classification

import "github.com/Veraticus/statement-roast/internal/model"

// DefaultRules returns the built-in keyword table in priority order.
// Specific merchants come before the broader brands they overlap with:
// delivery apps before ride-share, "oxxo gas" before "oxxo", pharmacy chains
// before the supermarkets that host them.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: model.CategoryFoodDelivery,
			Keywords: []string{
				"uber eats", "ubereats", "uber*eats", "rappi", "didi food", "didifood",
				"sin delantal", "ifood", "cornershop",
			},
		},
		{
			Category: model.CategoryRideshare,
			Keywords: []string{"uber", "didi", "cabify", "indriver", "bolt.eu"},
			// Delivery charges sometimes carry the ride-share brand.
			Exclude: []string{"eats", "food", "comida", "rappi"},
		},
		{
			Category: model.CategoryGasTransport,
			Keywords: []string{
				"oxxo gas", "pemex", "gasolin", "shell", "exxon", "^mobil", "g500", "bp gas",
				"metrobus", "^metro ", "caseta", "iave", "televia", "pase urbano",
				"estacionamiento",
			},
		},
		{
			Category: model.CategoryConvenienceStore,
			Keywords: []string{
				"oxxo", "7-eleven", "7 eleven", "seven eleven", "circle k", "tiendas extra",
				"^extra ", "kiosko", "six ",
			},
		},
		{
			Category: model.CategoryPharmacyHealth,
			Keywords: []string{
				"farmacias guadalajara", "farmacia guadalajara", "fcia guadalajara",
				"farmacia del ahorro", "farmacias del ahorro", "benavides", "similares",
				"farmacia", "pharmacy", "hospital", "consultorio",
				"laboratorio", "chopo", "dentista", "medic",
			},
		},
		{
			Category: model.CategorySubscriptionGym,
			Keywords: []string{
				"smart fit", "smartfit", "sports world", "anytime fitness", "energy fitness",
				"gimnasio", "gym", "netflix", "spotify", "disney plus", "disney+", "hbo",
				"max.com", "prime video", "amazon prime", "apple.com/bill", "youtube premium",
				"google*youtube", "crunchyroll",
			},
		},
		{
			Category: model.CategoryEcommerce,
			Keywords: []string{
				"amazon", "amzn", "mercado libre", "mercadolibre", "mercado*pago", "shein",
				"aliexpress", "temu", "liverpool", "coppel", "palacio de hierro", "paypal*",
				"shopify",
			},
		},
		{
			Category: model.CategorySupermarket,
			Keywords: []string{
				"walmart", "wal-mart", "wal mart", "bodega aurrera", "soriana", "chedraui",
				"la comer", "superama", "costco", "sams club", "sam's club", "h-e-b",
				"^heb ", "city market", "fresko",
			},
		},
		{
			Category: model.CategoryRestaurantCafe,
			Keywords: []string{
				"starbucks", "restaurante", "^rest", "cafe", "taqueria", "tacos", "vips",
				"sanborns", "toks", "italianni", "mcdonald", "burger king", "kfc", "domino",
				"little caesars", "pizza", "sushi", "cantina", "la parroquia",
			},
		},
		{
			Category: model.CategoryCashWithdrawal,
			Keywords: []string{
				"retiro cajero", "retiro en cajero", "retiro de efectivo", "retiro*efectivo",
				"disposicion de efectivo", "disp efectivo", "cajero automatico", "^atm ",
				"atm withdrawal",
			},
		},
		{
			Category: model.CategoryBankFee,
			Keywords: []string{
				"comision", "anualidad", "cuota de manejo", "cargo por", "penalizacion",
				"iva com", "interes moratorio", "intereses moratorios", "bank fee",
				"overdraft",
			},
		},
		{
			Category: model.CategorySPEITransfer,
			Keywords: []string{
				"spei", "transferencia", "traspaso", "^transf ", "deposito por transf",
			},
		},
		{
			Category: model.CategoryEducation,
			Keywords: []string{
				"colegiatura", "universidad", "escuela", "colegio", "coursera", "udemy",
				"platzi", "duolingo", "libreria", "gandhi", "inscripcion", "unam", "itesm",
			},
		},
	}
}
