package request_models

type CreateFeedbackRequest struct {
	SwapRequestID string  `json:"swapRequestId" binding:"required"`
	ToUserID      string  `json:"toUserId" binding:"required"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Comment       *string `json:"comment"`
}
