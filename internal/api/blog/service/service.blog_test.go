package blogsvc

import (
	"context"
	"errors"
	"testing"

	blogdto "elite_devs/internal/api/blog/dto"
	blogmodels "elite_devs/internal/api/blog/models"
	"elite_devs/internal/common"
)

func TestPublishedFilterDefault(t *testing.T) {
	filter := PublishedFilter(blogdto.BlogListQuery{})

	if filter["status"] != blogmodels.PostStatusPublished {
		t.Errorf("Danh sách public chỉ được trả bài đã xuất bản, filter: %+v", filter)
	}
	if len(filter) != 1 {
		t.Errorf("Không có query thì chỉ lọc theo status, filter: %+v", filter)
	}
}

func TestPublishedFilterWithQuery(t *testing.T) {
	filter := PublishedFilter(blogdto.BlogListQuery{
		Category: "engineering",
		Tag:      "golang",
		Featured: "true",
	})

	if filter["category"] != "engineering" {
		t.Errorf("Thiếu điều kiện category: %+v", filter)
	}
	if filter["tags"] != "golang" {
		t.Errorf("Lọc tag phải match phần tử trong mảng tags: %+v", filter)
	}
	if filter["featured"] != true {
		t.Errorf("featured=true phải thành điều kiện boolean: %+v", filter)
	}
}

func TestPublishedFilterIgnoresBadFeatured(t *testing.T) {
	filter := PublishedFilter(blogdto.BlogListQuery{Featured: "yes"})

	if _, ok := filter["featured"]; ok {
		t.Errorf("Giá trị featured không hợp lệ phải bị bỏ qua: %+v", filter)
	}
}

func TestBulkUpdateStatusIDSaiDinhDang(t *testing.T) {
	// ID không phải hex hợp lệ phải bị chặn trước khi chạm tới database
	s := &BlogService{}
	_, err := s.BulkUpdateStatus(context.Background(), []string{"not-an-object-id"}, blogmodels.PostStatusPublished)
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

func TestDistinctStrings(t *testing.T) {
	values := []interface{}{"engineering", "", nil, "design", 42}
	got := distinctStrings(values)

	if len(got) != 2 || got[0] != "engineering" || got[1] != "design" {
		t.Errorf("Chỉ giữ chuỗi khác rỗng, nhận được %v", got)
	}
}
