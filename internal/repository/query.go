package repository

const (
	insertDownloadJob = `
	INSERT INTO download_jobs (
		id,
		owner,
		name,
		status,
		transactions,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	downloadJobsTable = "download_jobs"
)

var downloadJobColumns = []string{
	"id",
	"owner",
	"name",
	"status",
	"transactions",
	"created_at",
}
