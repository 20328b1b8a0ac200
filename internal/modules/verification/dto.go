package verification

type VerifyMembershipRequest struct {
	EntryIndex int `json:"entry_index" binding:"min=0"`
}

type VerifyDocumentRequest struct {
	FileName     string `json:"file_name" binding:"required"`
	DocumentType string `json:"document_type" binding:"required"`
}
