package rules

import "github.com/korhan-dev/cari-ledger/internal/domain"

// ruleTable is the static rule definition for every transaction type. Labels
// are the Turkish display texts the forms render; they are informational and
// never validated. Field names and select options are load-bearing: the meta
// validator matches submitted keys and values against them exactly.
var ruleTable = map[domain.TransactionTypeCode]domain.TypeRule{
	domain.GoldEntry: {
		RequiresAccount:       true,
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Ürün Adı", Type: domain.FieldTypeText},
			{Name: "gram", Label: "Gram", Type: domain.FieldTypeNumber, Required: true},
			{Name: "ayar", Label: "Ayar", Type: domain.FieldTypeNumber, Required: true},
			{Name: "has", Label: "Has", Type: domain.FieldTypeNumber},
			{Name: "labor", Label: "Toplam İşçilik", Type: domain.FieldTypeNumber},
			{Name: "unitLabor", Label: "Birim İşçilik", Type: domain.FieldTypeNumber},
		},
	},
	domain.DiscountCredit: {
		RequiresAccount: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "amount", Label: "Alacak İskonto Tutarı", Type: domain.FieldTypeNumber, Required: true},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Required: true, Options: []string{"TL", "USD", "EUR"}},
		},
	},
	domain.DiscountDebit: {
		RequiresAccount: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "amount", Label: "Borç İskonto Tutarı", Type: domain.FieldTypeNumber, Required: true},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Required: true, Options: []string{"TL", "USD", "EUR"}},
		},
	},
	domain.ReturnedOut: {
		RequiresAccount:       true,
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Ürün", Type: domain.FieldTypeText},
			{Name: "quantity", Label: "Miktar", Type: domain.FieldTypeNumber},
			{Name: "unit", Label: "Birim", Type: domain.FieldTypeText},
		},
	},
	domain.Conversion: {
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "fromCurrency", Label: "Dönüştürülen Birim", Type: domain.FieldTypeSelect, Options: []string{"TL", "USD", "HAS"}},
			{Name: "toCurrency", Label: "Yeni Birim", Type: domain.FieldTypeSelect, Options: []string{"TL", "USD", "HAS"}},
			{Name: "amount", Label: "Miktar", Type: domain.FieldTypeNumber},
		},
	},
	domain.ScrapOut: {
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Hurda Ürün", Type: domain.FieldTypeText},
			{Name: "gram", Label: "Gram", Type: domain.FieldTypeNumber},
			{Name: "ayar", Label: "Ayar", Type: domain.FieldTypeNumber},
		},
	},
	domain.ScrapIn: {
		RequiresAccount:       true,
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Hurda Ürün", Type: domain.FieldTypeText},
			{Name: "gram", Label: "Gram", Type: domain.FieldTypeNumber},
			{Name: "ayar", Label: "Ayar", Type: domain.FieldTypeNumber},
		},
	},
	domain.MaterialOut: {
		RequiresAccount: true,
		RequiresStock:   true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "materialName", Label: "Malzeme", Type: domain.FieldTypeText},
			{Name: "quantity", Label: "Miktar", Type: domain.FieldTypeNumber},
			{Name: "unit", Label: "Birim", Type: domain.FieldTypeText},
		},
	},
	domain.MaterialIn: {
		RequiresAccount: true,
		RequiresStock:   true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "materialName", Label: "Malzeme", Type: domain.FieldTypeText},
			{Name: "quantity", Label: "Miktar", Type: domain.FieldTypeNumber},
			{Name: "unit", Label: "Birim", Type: domain.FieldTypeText},
		},
	},
	domain.Offset: {
		RequiresAccount:       true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "offsetAmount", Label: "Mahsup Tutarı", Type: domain.FieldTypeNumber, Required: true},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Required: true, Options: []string{"TL", "USD", "HAS"}},
			{Name: "targetAccount", Label: "Karşı Hesap", Type: domain.FieldTypeText},
		},
	},
	domain.MaterialReturn: {
		RequiresAccount: true,
		RequiresStock:   true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "materialName", Label: "İade Malzeme", Type: domain.FieldTypeText},
			{Name: "quantity", Label: "Miktar", Type: domain.FieldTypeNumber},
			{Name: "unit", Label: "Birim", Type: domain.FieldTypeText},
		},
	},
	domain.MaterialSale: {
		RequiresAccount:       true,
		RequiresStock:         true,
		RequiresReferenceCode: true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "materialName", Label: "Satılan Malzeme", Type: domain.FieldTypeText},
			{Name: "quantity", Label: "Miktar", Type: domain.FieldTypeNumber},
			{Name: "unit", Label: "Birim", Type: domain.FieldTypeText},
			{Name: "amount", Label: "Tutar", Type: domain.FieldTypeNumber},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Options: []string{"TL", "USD"}},
		},
	},
	domain.CashPayment: {
		RequiresAccount: true,
		RequiresCash:    true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "amount", Label: "Ödeme Tutarı", Type: domain.FieldTypeNumber},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Options: []string{"TL", "USD", "EUR"}},
		},
	},
	domain.CashCollection: {
		RequiresAccount: true,
		RequiresCash:    true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "amount", Label: "Tahsilat Tutarı", Type: domain.FieldTypeNumber},
			{Name: "currency", Label: "Para Birimi", Type: domain.FieldTypeSelect, Options: []string{"TL", "USD", "EUR"}},
		},
	},
	domain.CustomProductOut: {
		RequiresAccount: true,
		RequiresStock:   true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Özel Ürün", Type: domain.FieldTypeText},
			{Name: "gram", Label: "Gram", Type: domain.FieldTypeNumber},
			{Name: "ayar", Label: "Ayar", Type: domain.FieldTypeNumber},
			{Name: "has", Label: "Has", Type: domain.FieldTypeNumber},
		},
	},
	domain.CustomProductIn: {
		RequiresAccount: true,
		RequiresStock:   true,
		MetaSchema: []domain.MetaFieldSpec{
			{Name: "productName", Label: "Özel Ürün", Type: domain.FieldTypeText},
			{Name: "gram", Label: "Gram", Type: domain.FieldTypeNumber},
			{Name: "ayar", Label: "Ayar", Type: domain.FieldTypeNumber},
			{Name: "has", Label: "Has", Type: domain.FieldTypeNumber},
		},
	},
}

// TypeLabels are the default display names seeded into the catalog for codes
// that have no row yet.
var TypeLabels = map[domain.TransactionTypeCode]string{
	domain.GoldEntry:        "Altın Girişi",
	domain.DiscountCredit:   "İskonto (Alacak)",
	domain.DiscountDebit:    "İskonto (Borç)",
	domain.ReturnedOut:      "Çıkan İade",
	domain.Conversion:       "Dönüştürme",
	domain.ScrapOut:         "Hurda Çıkış",
	domain.ScrapIn:          "Hurda Giriş",
	domain.MaterialOut:      "Malzeme Çıkış",
	domain.MaterialIn:       "Malzeme Giriş",
	domain.Offset:           "Mahsup",
	domain.MaterialSale:     "Malzeme Satış",
	domain.MaterialReturn:   "Malzeme İade",
	domain.CashPayment:      "Nakit Ödeme",
	domain.CashCollection:   "Nakit Tahsilat",
	domain.CustomProductOut: "Özel Ürün Çıkış",
	domain.CustomProductIn:  "Özel Ürün Giriş",
}
