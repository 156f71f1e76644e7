package request

type LinkRequest struct {
	URL     string `json:"url" binding:"required"`
	OrderID string `json:"order_id"`
	Step    string `json:"step"`
	Caption string `json:"caption"`
}

// UploadForm is the multipart form of POST /attachments. The file part is
// read separately.
type UploadForm struct {
	Folder    string `form:"folder"`
	OrderID   string `form:"order_id"`
	Step      string `form:"step"`
	MediaType string `form:"media_type" binding:"required"`
	Caption   string `form:"caption"`
}
