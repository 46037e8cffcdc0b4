// Package seed loads a small demo dataset on first boot so that the API is
// explorable without manual data entry. It only writes when the tables are
// empty, so restarting a seeded instance is a no-op.
package seed

import (
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run inserts the sample lots, customers, transactions and crate entries.
// Expiry dates are relative to boot time so the freshness states (fresh,
// expiring soon, expired) are always represented.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	day := func(offset int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
	}

	lots := []model.InventoryLot{
		{Name: "Tomatoes", Variant: "Grade A", LotNumber: "LOT-2301", Quantity: decimal.NewFromInt(250), Unit: model.UnitKg, PurchaseDate: day(-2), ExpiryDate: day(2)},
		{Name: "Apples", Variant: "Shimla", LotNumber: "LOT-2302", Quantity: decimal.NewFromInt(40), Unit: model.UnitLot, PurchaseDate: day(-5), ExpiryDate: day(12)},
		{Name: "Potatoes", Variant: "Desi", LotNumber: "LOT-2303", Quantity: decimal.NewFromInt(500), Unit: model.UnitKg, PurchaseDate: day(-10), ExpiryDate: day(30)},
		{Name: "Bananas", Variant: "Robusta", LotNumber: "LOT-2304", Quantity: decimal.NewFromInt(60), Unit: model.UnitLot, PurchaseDate: day(-1), ExpiryDate: day(4)},
		{Name: "Carrots", Variant: "Old Stock", LotNumber: "LOT-2298", Quantity: decimal.NewFromInt(80), Unit: model.UnitKg, PurchaseDate: day(-15), ExpiryDate: day(-2)},
	}
	if err := db.Create(&lots).Error; err != nil {
		return err
	}

	customers := []model.Customer{
		{Name: "Rajesh Kumar", Address: "Shop 14, Azadpur Mandi, Delhi", ContactNumber: "+91 98100 11223", KYCVerified: true},
		{Name: "Sunita Sharma", Address: "Sector 26 Market, Chandigarh", ContactNumber: "+91 98761 44556", KYCVerified: true},
		{Name: "Amit Singh", Address: "Koyambedu Market, Chennai", ContactNumber: "+91 90030 77889", KYCVerified: false},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	// Amit Singh is left without activity: a zero-balance customer.
	rajesh, sunita := customers[0], customers[1]
	tomatoes, apples := lots[0], lots[1]

	pay := func(amount int64) *decimal.Decimal {
		d := decimal.NewFromInt(amount)
		return &d
	}

	txs := []model.Transaction{
		{
			CustomerID: rajesh.ID, Date: day(-7), Kind: model.KindSale,
			TotalAmount: decimal.NewFromInt(400),
			Lines: []model.SaleLine{
				{InventoryLotID: tomatoes.ID, ItemName: "Tomatoes (Grade A)", Quantity: decimal.NewFromInt(20), Unit: model.UnitKg, PricePerUnit: decimal.NewFromInt(20), Total: decimal.NewFromInt(400), Position: 0},
			},
		},
		{
			CustomerID: rajesh.ID, Date: day(-3), Kind: model.KindSale,
			TotalAmount: decimal.NewFromInt(1500),
			Lines: []model.SaleLine{
				{InventoryLotID: apples.ID, ItemName: "Apples (Shimla)", Quantity: decimal.NewFromInt(10), Unit: model.UnitLot, PricePerUnit: decimal.NewFromInt(150), Total: decimal.NewFromInt(1500), Position: 0},
			},
		},
		{
			CustomerID: rajesh.ID, Date: day(-1), Kind: model.KindPayment,
			PaymentAmount: pay(500), TotalAmount: decimal.NewFromInt(500),
		},
		{
			CustomerID: sunita.ID, Date: day(-4), Kind: model.KindSale,
			TotalAmount: decimal.NewFromInt(2400),
			Lines: []model.SaleLine{
				{InventoryLotID: tomatoes.ID, ItemName: "Tomatoes (Grade A)", Quantity: decimal.NewFromInt(80), Unit: model.UnitKg, PricePerUnit: decimal.NewFromInt(30), Total: decimal.NewFromInt(2400), Position: 0},
			},
		},
		{
			CustomerID: sunita.ID, Date: day(-2), Kind: model.KindPayment,
			PaymentAmount: pay(2400), TotalAmount: decimal.NewFromInt(2400),
		},
	}
	if err := db.Create(&txs).Error; err != nil {
		return err
	}

	crates := []model.CrateLedgerEntry{
		{CustomerID: rajesh.ID, Date: day(-7), CratesIssued: 12},
		{CustomerID: sunita.ID, Date: day(-4), CratesIssued: 8},
		{CustomerID: rajesh.ID, Date: day(-3), CratesIssued: 5},
		{CustomerID: sunita.ID, Date: day(-2), CratesReturned: 8},
		{CustomerID: rajesh.ID, Date: day(-1), CratesReturned: 10},
	}
	if err := db.Create(&crates).Error; err != nil {
		return err
	}

	log.Info().
		Int("lots", len(lots)).
		Int("customers", len(customers)).
		Int("transactions", len(txs)).
		Int("crate_entries", len(crates)).
		Msg("sample data seeded")
	return nil
}
