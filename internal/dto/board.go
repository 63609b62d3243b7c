package dto

// SquareQuery 表示 GET /edit-square 的查询参数。
// 行列保持字符串形式，由 service.ParseCoordinate 统一解析。
type SquareQuery struct {
	Row string `form:"row"`
	Col string `form:"col"`
}

// UpdateSquareRequest 表示 POST /update-square 提交的表单。
// buyer 缺失时视为空字符串，即释放该格子。
type UpdateSquareRequest struct {
	Row   string `form:"row"`
	Col   string `form:"col"`
	Buyer string `form:"buyer"`
}

// UpdateBoardRequest 表示 POST /update-board 提交的表单，所有字段可选。
type UpdateBoardRequest struct {
	BoardTitle string `form:"boardTitle"`
	XLabels    string `form:"xLabels"`
	YLabels    string `form:"yLabels"`
}
