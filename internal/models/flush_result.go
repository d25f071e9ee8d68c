package models

type FlushResult struct {
	Deleted    int64  `json:"deleted"`
	ArchiveURL string `json:"archive_url,omitempty"`
}
