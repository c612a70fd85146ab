package basehdl

// Package basehdl - base handler dùng chung cho tất cả domain handler.
// Cung cấp parse request, validate input, xử lý filter/options MongoDB và chuẩn hóa response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	basesvc "elite_devs/internal/api/base/service"
	"elite_devs/internal/common"
	"elite_devs/internal/global"
	"elite_devs/internal/utility"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// FilterOptions cấu hình giới hạn cho filter từ query string.
type FilterOptions struct {
	DeniedFields     []string // Các trường không cho phép filter
	AllowedOperators []string // Các MongoDB operator cho phép
	MaxFields        int      // Số lượng trường tối đa trong một filter
}

// DefaultFilterOptions trả về cấu hình filter mặc định.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	}
}

// BaseHandler là handler cơ sở cho các domain handler.
// T là kiểu Model, CreateInput/UpdateInput là các DTO nhận từ request body.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T]
	filterOptions FilterOptions
}

// NewBaseHandler tạo base handler với filter options mặc định.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService:   service,
		filterOptions: DefaultFilterOptions(),
	}
}

// SetFilterOptions thay cấu hình filter cho handler.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetFilterOptions(opts FilterOptions) {
	h.filterOptions = opts
}

// ValidationDetail mô tả một lỗi validate trên một trường cụ thể.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateInput validate input theo struct tag `validate`.
// Trả về common.Error với danh sách ValidationDetail khi có lỗi.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	return ValidateStruct(input)
}

// ValidateStruct validate struct theo tag `validate` (dùng bởi domain handler không embed BaseHandler).
func ValidateStruct(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		var details []ValidationDetail
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range validationErrs {
				details = append(details, ValidationDetail{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
	}
	return nil
}

// validationMessage sinh thông báo lỗi dễ đọc cho từng validate tag.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "no_xss":
		return fmt.Sprintf("%s contains disallowed content", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ParseRequestBody parse request body JSON vào struct đích.
// Dùng json.Decoder với UseNumber để giữ nguyên độ chính xác của số.
// Body rỗng hoặc JSON hỏng trả về common.Error 400, không bao giờ là lỗi hệ thống.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, result interface{}) error {
	return ParseBody(c, result)
}

// ParseBody parse request body JSON (dùng bởi domain handler không embed BaseHandler).
func ParseBody(c fiber.Ctx, result interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(
			common.ErrCodeValidationFormat,
			"Request body không được rỗng",
			common.StatusBadRequest,
			[]ValidationDetail{{Field: "body", Message: "request body is required"}},
		)
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(result); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			"Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu",
			common.StatusBadRequest,
			[]ValidationDetail{{Field: "body", Message: err.Error()}},
		)
	}
	return nil
}

// ParseRequestQuery parse query param `query` (JSON) vào struct đích.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestQuery(c fiber.Ctx, result interface{}) error {
	queryStr := c.Query("query")
	if queryStr == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(queryStr), result); err != nil {
		return fmt.Errorf("parse query thất bại: %w", err)
	}
	return nil
}

// ParseRequestParams bind URI params vào struct đích.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, result interface{}) error {
	if err := c.Bind().URI(result); err != nil {
		return fmt.Errorf("parse URI params thất bại: %w", err)
	}
	return nil
}

// ProcessFilter đọc query param `filter` (JSON), normalize và validate trước khi query MongoDB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	filterStr := c.Query("filter", "{}")

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(filterStr), &raw); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter phải là JSON object hợp lệ. Giá trị nhận được: %s", filterStr),
			common.StatusBadRequest,
			nil,
		)
	}

	filter := h.normalizeFilter(raw)
	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// normalizeFilter chuyển các giá trị đặc biệt trong filter về kiểu MongoDB tương ứng.
// Hỗ trợ extended JSON {"$oid": "..."} và tự động convert string 24 hex sang ObjectID
// cho các field có hậu tố Id.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(raw map[string]interface{}) bson.M {
	filter := bson.M{}
	for key, value := range raw {
		filter[key] = h.normalizeFilterValue(key, value)
	}
	return filter
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(key string, value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		// Extended JSON: {"$oid": "..."}
		if oidStr, ok := v["$oid"].(string); ok && len(v) == 1 {
			if oid, err := primitive.ObjectIDFromHex(oidStr); err == nil {
				return oid
			}
			return value
		}
		// Operator map: {"$in": [...], "$gte": ...}
		nested := bson.M{}
		for op, opValue := range v {
			if op == "$in" || op == "$nin" {
				if arr, ok := opValue.([]interface{}); ok {
					converted := make([]interface{}, len(arr))
					for i, item := range arr {
						converted[i] = h.normalizeFilterValue(key, item)
					}
					nested[op] = converted
					continue
				}
			}
			nested[op] = h.normalizeFilterValue(key, opValue)
		}
		return nested
	case string:
		// Field có hậu tố Id và giá trị là hex 24 ký tự: convert sang ObjectID
		if (key == "_id" || strings.HasSuffix(key, "Id")) && primitive.IsValidObjectID(v) {
			if oid, err := primitive.ObjectIDFromHex(v); err == nil {
				return oid
			}
		}
		return v
	default:
		return value
	}
}

// validateFilter kiểm tra filter theo FilterOptions (denied fields, allowed operators, max fields).
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter bson.M) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter chỉ cho phép tối đa %d trường", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for key, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if strings.EqualFold(key, denied) || strings.Contains(strings.ToLower(key), denied) {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không cho phép filter theo trường '%s'", key),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		if nested, ok := value.(bson.M); ok {
			for op := range nested {
				if !strings.HasPrefix(op, "$") {
					continue
				}
				if !utility.Contains(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator '%s' không được hỗ trợ", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}
	return nil
}

// mongoRawOptions là cấu trúc options nhận từ query string.
type mongoRawOptions struct {
	Projection map[string]interface{} `json:"projection"`
	Sort       json.RawMessage        `json:"sort"`
	Limit      *int64                 `json:"limit"`
	Skip       *int64                 `json:"skip"`
}

// maxQueryLimit giới hạn số bản ghi tối đa cho một lần query qua API.
const maxQueryLimit = 1000

// processMongoOptions đọc query param `options` (JSON) và build FindOptions/FindOneOptions.
// findOne=true trả về *options.FindOneOptions, ngược lại trả về *options.FindOptions.
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, findOne bool) (interface{}, error) {
	optionsStr := c.Query("options", "{}")

	var raw mongoRawOptions
	if err := json.Unmarshal([]byte(optionsStr), &raw); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options phải là JSON object hợp lệ. Giá trị nhận được: %s", optionsStr),
			common.StatusBadRequest,
			nil,
		)
	}

	sort, err := parseSortWithOrder(raw.Sort)
	if err != nil {
		return nil, err
	}

	if findOne {
		opts := mongoopts.FindOne()
		if len(raw.Projection) > 0 {
			opts.SetProjection(raw.Projection)
		}
		if len(sort) > 0 {
			opts.SetSort(sort)
		}
		if raw.Skip != nil && *raw.Skip >= 0 {
			opts.SetSkip(*raw.Skip)
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if len(raw.Projection) > 0 {
		opts.SetProjection(raw.Projection)
	}
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if raw.Limit != nil {
		limit := *raw.Limit
		if limit < 0 {
			limit = 0
		}
		if limit > maxQueryLimit {
			limit = maxQueryLimit
		}
		opts.SetLimit(limit)
	}
	if raw.Skip != nil && *raw.Skip >= 0 {
		opts.SetSkip(*raw.Skip)
	}
	return opts, nil
}

// parseSortWithOrder parse sort JSON giữ nguyên thứ tự khai báo các key.
// json.Unmarshal vào map sẽ mất thứ tự, nên phải đọc token tuần tự bằng json.Decoder.
func parseSortWithOrder(rawSort json.RawMessage) (bson.D, error) {
	if len(rawSort) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(rawSort))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Sort phải là JSON object", common.StatusBadRequest, nil)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Sort phải là JSON object", common.StatusBadRequest, nil)
	}

	var sort bson.D
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Sort không hợp lệ", common.StatusBadRequest, nil)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Sort không hợp lệ", common.StatusBadRequest, nil)
		}

		valueToken, err := decoder.Token()
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Sort không hợp lệ", common.StatusBadRequest, nil)
		}
		num, ok := valueToken.(json.Number)
		if !ok {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Giá trị sort của '%s' phải là 1 hoặc -1", key),
				common.StatusBadRequest,
				nil,
			)
		}
		order, err := num.Int64()
		if err != nil || (order != 1 && order != -1) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Giá trị sort của '%s' phải là 1 hoặc -1", key),
				common.StatusBadRequest,
				nil,
			)
		}
		sort = append(sort, bson.E{Key: key, Value: int(order)})
	}
	return sort, nil
}

// ParsePagination đọc page/limit từ query string với giá trị mặc định an toàn.
func ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > maxQueryLimit {
		limit = maxQueryLimit
	}
	return page, limit
}

// GetIDFromContext lấy và validate ObjectID từ URI param `id`.
func GetIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// TransformCreateInputToModel chuyển DTO CreateInput sang Model qua JSON tag tương ứng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	var model T
	if _, err := utility.ConvertStruct(input, &model); err != nil {
		return nil, fmt.Errorf("transform create input thất bại: %w", err)
	}
	return &model, nil
}

// TransformUpdateInputToModel chuyển DTO UpdateInput sang Model qua JSON tag tương ứng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	var model T
	if _, err := utility.ConvertStruct(input, &model); err != nil {
		return nil, fmt.Errorf("transform update input thất bại: %w", err)
	}
	return &model, nil
}
