// Package global giữ các biến toàn cục dùng chung của ứng dụng:
// config, kết nối MongoDB, registry collection và validator.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"elite_devs/config"
	"elite_devs/internal/registry"
)

// MongoDBColNames chứa tên các collection trong database.
type MongoDBColNames struct {
	Contacts              string
	BlogPosts             string
	PortfolioProjects     string
	NewsletterSubscribers string
	AnalyticsEvents       string
}

var (
	// MongoDB_ServerConfig cấu hình server đọc từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session kết nối MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ColNames tên các collection
	MongoDB_ColNames = MongoDBColNames{
		Contacts:              "contacts",
		BlogPosts:             "blog_posts",
		PortfolioProjects:     "portfolio_projects",
		NewsletterSubscribers: "newsletter_subscribers",
		AnalyticsEvents:       "analytics_events",
	}

	// RegistryCollections registry chứa các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// Validate validator dùng chung, khởi tạo trong InitValidator
	Validate *validator.Validate
)

// ColNameSlice trả về danh sách tên collection để khởi tạo registry và index.
func ColNameSlice() []string {
	return []string{
		MongoDB_ColNames.Contacts,
		MongoDB_ColNames.BlogPosts,
		MongoDB_ColNames.PortfolioProjects,
		MongoDB_ColNames.NewsletterSubscribers,
		MongoDB_ColNames.AnalyticsEvents,
	}
}
