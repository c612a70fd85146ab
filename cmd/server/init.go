package main

import (
	"context"

	"elite_devs/config"
	analyticsmodels "elite_devs/internal/api/analytics/models"
	blogmodels "elite_devs/internal/api/blog/models"
	contactmodels "elite_devs/internal/api/contact/models"
	"elite_devs/internal/api/events"
	newslettermodels "elite_devs/internal/api/newsletter/models"
	portfoliomodels "elite_devs/internal/api/portfolio/models"
	"elite_devs/internal/database"
	"elite_devs/internal/global"
	"elite_devs/internal/logger"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initDataChangeLog()    // Đăng ký handler ghi log thay đổi dữ liệu
}

// Hàm đăng ký handler log mọi thay đổi dữ liệu qua CRUD (chạy bất đồng bộ)
func initDataChangeLog() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Debug("Data changed")
	})
	logrus.Info("Registered data change log handler")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo index cho các collection từ struct tag của model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), contactmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BlogPosts), blogmodels.BlogPost{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PortfolioProjects), portfoliomodels.PortfolioProject{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.NewsletterSubscribers), newslettermodels.NewsletterSubscriber{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AnalyticsEvents), analyticsmodels.Event{})
	logrus.Info("Created collection indexes")
}
