package portfoliosvc

import (
	"context"
	"errors"
	"testing"

	portfoliodto "elite_devs/internal/api/portfolio/dto"
	portfoliomodels "elite_devs/internal/api/portfolio/models"
	"elite_devs/internal/common"
)

func TestPublishedFilterDefault(t *testing.T) {
	filter := PublishedFilter(portfoliodto.ProjectListQuery{})

	if filter["status"] != portfoliomodels.ProjectStatusPublished {
		t.Errorf("Danh sách public chỉ được trả dự án đang hiển thị, filter: %+v", filter)
	}
	if len(filter) != 1 {
		t.Errorf("Không có query thì chỉ lọc theo status, filter: %+v", filter)
	}
}

func TestPublishedFilterWithQuery(t *testing.T) {
	filter := PublishedFilter(portfoliodto.ProjectListQuery{
		Category:   "web",
		Technology: "go",
		Featured:   "true",
	})

	if filter["category"] != "web" {
		t.Errorf("Thiếu điều kiện category: %+v", filter)
	}
	if filter["technologies"] != "go" {
		t.Errorf("Lọc technology phải match phần tử trong mảng technologies: %+v", filter)
	}
	if filter["featured"] != true {
		t.Errorf("featured=true phải thành điều kiện boolean: %+v", filter)
	}
}

func TestBulkUpdateStatusIDSaiDinhDang(t *testing.T) {
	// ID không phải hex hợp lệ phải bị chặn trước khi chạm tới database
	s := &PortfolioService{}
	_, err := s.BulkUpdateStatus(context.Background(), []string{"xxx"}, portfoliomodels.ProjectStatusPublished)
	if err == nil {
		t.Fatal("ID sai định dạng phải trả về lỗi")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi phải là *common.Error, nhận được %T", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("ID sai định dạng phải trả về 400, nhận được %d", appErr.StatusCode)
	}
	if appErr.Code != common.ErrCodeValidationFormat {
		t.Errorf("Mã lỗi phải là %s, nhận được %s", common.ErrCodeValidationFormat.Code, appErr.Code.Code)
	}
}
