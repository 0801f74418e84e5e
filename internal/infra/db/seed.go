package db

import (
	"app/internal/domain/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the platform payment methods, part categories and the admin
// account on an empty database. Safe to call on every boot.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.PaymentMethod{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	methods := []model.PaymentMethod{
		{Name: "Telebirr", Type: model.MethodTypeMobileMoney, AccountName: "Etho Parts", AccountNumber: "0777770757", Instructions: "Send money to the account number and upload receipt", Enabled: true},
		{Name: "CBE Birr", Type: model.MethodTypeMobileMoney, AccountName: "Etho Parts", AccountNumber: "1000123456789", Instructions: "Transfer to CBE Birr account", Enabled: true},
		{Name: "Amole", Type: model.MethodTypeMobileMoney, AccountName: "Etho Parts", AccountNumber: "0911223344", Instructions: "Send via Amole app", Enabled: true},
		{Name: "Commercial Bank of Ethiopia (CBE)", Type: model.MethodTypeBank, AccountName: "Etho Parts PLC", AccountNumber: "1000987654321", Instructions: "Bank transfer to CBE account", Enabled: true},
		{Name: "Awash Bank", Type: model.MethodTypeBank, AccountName: "Etho Parts PLC", AccountNumber: "01234567890123", Instructions: "Transfer to Awash Bank account", Enabled: true},
		{Name: "Dashen Bank", Type: model.MethodTypeBank, AccountName: "Etho Parts PLC", AccountNumber: "0123456789012", Instructions: "Transfer to Dashen Bank account", Enabled: true},
	}
	if err := gdb.Create(&methods).Error; err != nil {
		return err
	}

	categories := []model.Category{
		{Name: "Engine Parts", Description: "Engine components and accessories", Icon: "engine"},
		{Name: "Brakes", Description: "Brake pads, rotors, and systems", Icon: "brake"},
		{Name: "Suspension", Description: "Shocks, struts, and springs", Icon: "suspension"},
		{Name: "Electrical", Description: "Batteries, alternators, starters", Icon: "electrical"},
		{Name: "Body Parts", Description: "Bumpers, doors, mirrors", Icon: "body"},
		{Name: "Filters", Description: "Air, oil, and fuel filters", Icon: "filter"},
		{Name: "Lighting", Description: "Headlights, taillights, bulbs", Icon: "light"},
		{Name: "Tires & Wheels", Description: "Tires, rims, and accessories", Icon: "tire"},
	}
	if err := gdb.Create(&categories).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		Email:        "admin@ethoparts.com",
		PasswordHash: string(hash),
		Name:         "Etho Parts Admin",
		Phone:        "0777770757",
		Role:         model.RoleAdmin,
		BusinessName: "Etho Parts",
		Address:      "Addis Ababa, Ethiopia",
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return err
	}

	// Commission collection defaults to the first mobile money account.
	return gdb.Create(&model.Setting{
		Key:             model.SettingCommissionPaymentMethod,
		PaymentMethodID: methods[0].ID,
		AccountName:     "Etho Parts Admin",
		AccountNumber:   "0777770757",
	}).Error
}
