// Package codedata holds the embedded currency-code reference lists used to
// build providers. The lists are compiled into the binary so provider
// construction never performs I/O.
package codedata

// FiatCodes lists the active ISO 4217 alphabetic currency codes. All entries
// are uppercase and exactly three characters long.
var FiatCodes = []string{
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
	"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BRL",
	"BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF", "CHF", "CLP", "CNY",
	"COP", "CRC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD", "EGP",
	"ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD",
	"GNF", "GTQ", "GYD", "HKD", "HNL", "HTG", "HUF", "IDR", "ILS", "INR",
	"IQD", "IRR", "ISK", "JMD", "JOD", "JPY", "KES", "KGS", "KHR", "KMF",
	"KPW", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD", "LSL",
	"LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRU", "MUR",
	"MVR", "MWK", "MXN", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR",
	"NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR", "PLN", "PYG", "QAR",
	"RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK", "SGD",
	"SHP", "SLE", "SOS", "SRD", "SSP", "STN", "SVC", "SYP", "SZL", "THB",
	"TJS", "TMT", "TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX",
	"USD", "UYU", "UZS", "VES", "VND", "VUV", "WST", "XAF", "XCD", "XOF",
	"XPF", "YER", "ZAR", "ZMW", "ZWG",
}

// CryptoSymbols lists cryptocurrency ticker symbols ordered by market-cap
// rank. The ordering is significant: the percentage filter keeps a prefix of
// this slice, so reordering entries changes filtered provider contents.
var CryptoSymbols = []string{
	"BTC", "ETH", "USDT", "BNB", "SOL", "XRP", "USDC", "ADA", "DOGE", "TRX",
	"AVAX", "SHIB", "DOT", "LINK", "TON", "MATIC", "BCH", "NEAR", "LTC", "UNI",
	"ICP", "APT", "XLM", "ETC", "OKB", "FIL", "HBAR", "ARB", "VET", "IMX",
	"CRO", "ATOM", "OP", "INJ", "MNT", "RNDR", "GRT", "TIA", "SUI", "SEI",
	"LDO", "STX", "RUNE", "AAVE", "ALGO", "FLOW", "QNT", "EGLD", "FTM", "SAND",
	"THETA", "XTZ", "AXS", "MANA", "CHZ", "CAKE", "EOS", "NEO", "KAVA", "MKR",
	"SNX", "CRV", "COMP", "YFI", "SUSHI", "ZEC", "DASH", "XMR", "ENJ", "BAT",
	"ZIL", "WAVES", "ONE", "GALA", "LRC", "CELO", "KSM", "AR", "MINA", "ROSE",
	"DYDX", "GMX", "FXS", "PEPE", "WIF", "BONK", "FLOKI", "ORDI", "JUP", "PYTH",
	"WLD", "BLUR", "ENS", "APE", "GMT", "MIOTA", "XDC", "TUSD", "USDD", "GUSD",
	"PAXG", "XAUT", "NEXO", "OCEAN", "FET", "AGIX", "RLC", "BAND", "ANKR", "STORJ",
	"AUDIO", "MASK", "MAGIC", "HIGH", "HOOK", "HOT", "GLM", "ICX", "ONT", "QTUM",
	"RVN", "SC", "DCR", "ZEN", "KDA", "CKB", "TWT", "JASMY", "LUNC", "USTC",
	"BABYDOGE", "SAFEMOON", "ELON", "KISHU", "SAITAMA", "VOLT", "CATGIRL", "MONONOKE",
	"T", "W", "S", "OM", "IO", "ENA", "ETHFI", "ALT", "DYM", "STRK",
	"ZETA", "MANTA", "PIXEL", "PORTAL", "AEVO", "METIS", "RONIN", "BEAM", "NOT", "TAO",
}
