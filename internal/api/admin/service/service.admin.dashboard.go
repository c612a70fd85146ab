// Package adminsvc tổng hợp dữ liệu dashboard và export cho admin.
package adminsvc

import (
	"context"
	"time"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	blogmodels "elite_devs/internal/api/blog/models"
	blogsvc "elite_devs/internal/api/blog/service"
	contactmodels "elite_devs/internal/api/contact/models"
	contactsvc "elite_devs/internal/api/contact/service"
	newslettermodels "elite_devs/internal/api/newsletter/models"
	newslettersvc "elite_devs/internal/api/newsletter/service"
	portfoliomodels "elite_devs/internal/api/portfolio/models"
	portfoliosvc "elite_devs/internal/api/portfolio/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// recentItemsLimit số bản ghi mới nhất trả kèm dashboard cho mỗi collection.
const recentItemsLimit = 5

// DashboardService gom dữ liệu từ tất cả các domain cho trang dashboard.
type DashboardService struct {
	contacts   *contactsvc.ContactService
	blog       *blogsvc.BlogService
	portfolio  *portfoliosvc.PortfolioService
	newsletter *newslettersvc.NewsletterService
	analytics  *analyticssvc.StatsService
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	contacts, err := contactsvc.NewContactService()
	if err != nil {
		return nil, err
	}
	blog, err := blogsvc.NewBlogService()
	if err != nil {
		return nil, err
	}
	portfolio, err := portfoliosvc.NewPortfolioService()
	if err != nil {
		return nil, err
	}
	newsletter, err := newslettersvc.NewNewsletterService()
	if err != nil {
		return nil, err
	}
	analytics, err := analyticssvc.NewStatsService()
	if err != nil {
		return nil, err
	}

	return &DashboardService{
		contacts:   contacts,
		blog:       blog,
		portfolio:  portfolio,
		newsletter: newsletter,
		analytics:  analytics,
	}, nil
}

// DashboardTotals số lượng bản ghi toàn thời gian.
type DashboardTotals struct {
	Contacts          int64 `json:"contacts"`
	BlogPosts         int64 `json:"blogPosts"`
	PortfolioProjects int64 `json:"portfolioProjects"`
	Subscribers       int64 `json:"subscribers"`
	PageViews         int64 `json:"pageViews"`
}

// DashboardWeek hoạt động trong 7 ngày gần nhất.
type DashboardWeek struct {
	Contacts          int64 `json:"contacts"`
	NewsletterSignups int64 `json:"newsletterSignups"`
	PageViews         int64 `json:"pageViews"`
}

// DashboardRecent các bản ghi mới nhất của từng collection.
type DashboardRecent struct {
	Contacts    []contactmodels.Contact                 `json:"contacts"`
	BlogPosts   []blogmodels.BlogPost                   `json:"blogPosts"`
	Projects    []portfoliomodels.PortfolioProject      `json:"projects"`
	Subscribers []newslettermodels.NewsletterSubscriber `json:"subscribers"`
}

// Dashboard dữ liệu tổng hợp cho trang dashboard admin.
type Dashboard struct {
	Totals         DashboardTotals `json:"totals"`
	Last7Days      DashboardWeek   `json:"last7Days"`
	PageViewsToday int64           `json:"pageViewsToday"`
	Recent         DashboardRecent `json:"recent"`
}

// GetDashboard gom toàn bộ số liệu dashboard bằng các truy vấn chạy song song.
// Một truy vấn lỗi làm cả dashboard lỗi, không trả kết quả một phần.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	weekAgoMs := weekAgo.UnixMilli()
	todayStart := now.UTC().Truncate(24 * time.Hour)

	dashboard := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	// Tổng toàn thời gian
	g.Go(func() error {
		n, err := s.contacts.CountDocuments(gctx, bson.M{})
		dashboard.Totals.Contacts = n
		return err
	})
	g.Go(func() error {
		n, err := s.blog.CountDocuments(gctx, bson.M{})
		dashboard.Totals.BlogPosts = n
		return err
	})
	g.Go(func() error {
		n, err := s.portfolio.CountDocuments(gctx, bson.M{})
		dashboard.Totals.PortfolioProjects = n
		return err
	})
	g.Go(func() error {
		n, err := s.newsletter.CountDocuments(gctx, bson.M{})
		dashboard.Totals.Subscribers = n
		return err
	})
	g.Go(func() error {
		n, err := s.analytics.CountDocuments(gctx, bson.M{"type": analyticsmodels.EventTypePageView})
		dashboard.Totals.PageViews = n
		return err
	})

	// Hoạt động 7 ngày gần nhất
	g.Go(func() error {
		n, err := s.contacts.CountDocuments(gctx, bson.M{"createdAt": bson.M{"$gte": weekAgoMs}})
		dashboard.Last7Days.Contacts = n
		return err
	})
	g.Go(func() error {
		n, err := s.newsletter.CountDocuments(gctx, bson.M{"subscribedAt": bson.M{"$gte": weekAgoMs}})
		dashboard.Last7Days.NewsletterSignups = n
		return err
	})
	g.Go(func() error {
		n, err := s.analytics.CountEventsSince(gctx, analyticsmodels.EventTypePageView, weekAgo)
		dashboard.Last7Days.PageViews = n
		return err
	})
	g.Go(func() error {
		n, err := s.analytics.CountEventsSince(gctx, analyticsmodels.EventTypePageView, todayStart)
		dashboard.PageViewsToday = n
		return err
	})

	// Bản ghi mới nhất của từng collection (chỉ các field tóm tắt)
	g.Go(func() error {
		opts := recentFindOptions("createdAt", bson.M{
			"name": 1, "email": 1, "service": 1, "status": 1, "createdAt": 1,
		})
		items, err := s.contacts.Find(gctx, bson.M{}, opts)
		dashboard.Recent.Contacts = emptyIfNil(items)
		return err
	})
	g.Go(func() error {
		opts := recentFindOptions("createdAt", bson.M{
			"title": 1, "slug": 1, "status": 1, "publishedAt": 1, "views": 1, "createdAt": 1,
		})
		items, err := s.blog.Find(gctx, bson.M{}, opts)
		dashboard.Recent.BlogPosts = emptyIfNil(items)
		return err
	})
	g.Go(func() error {
		opts := recentFindOptions("createdAt", bson.M{
			"title": 1, "slug": 1, "status": 1, "featured": 1, "createdAt": 1,
		})
		items, err := s.portfolio.Find(gctx, bson.M{}, opts)
		dashboard.Recent.Projects = emptyIfNil(items)
		return err
	})
	g.Go(func() error {
		opts := recentFindOptions("subscribedAt", bson.M{
			"email": 1, "status": 1, "source": 1, "subscribedAt": 1,
		})
		items, err := s.newsletter.Find(gctx, bson.M{}, opts)
		dashboard.Recent.Subscribers = emptyIfNil(items)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// recentFindOptions dựng options lấy N bản ghi mới nhất với projection tóm tắt.
func recentFindOptions(sortField string, projection bson.M) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(recentItemsLimit).
		SetProjection(projection)
}

// emptyIfNil giữ mảng rỗng thay vì null trong JSON response.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
