package graphql

import (
	"context"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

// Typed wrappers over Do for the operations the pages use.

type loginPayload struct {
	Login struct {
		Token string      `json:"token"`
		Me    models.User `json:"me"`
	} `json:"login"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	var out loginPayload
	err := c.Do(ctx, "", LoginMutation, map[string]any{"email": email, "password": password}, &out)
	if err != nil {
		return "", models.User{}, err
	}
	return out.Login.Token, out.Login.Me, nil
}

type jobsPayload struct {
	Jobs struct {
		Total   int          `json:"total"`
		Results []models.Job `json:"results"`
	} `json:"jobs"`
}

// Jobs fetches a page of jobs for the given stages, optionally constrained
// by a server-side search term.
func (c *Client) Jobs(ctx context.Context, token string, stages []models.Stage, skip, limit int, search string) ([]models.Job, int, error) {
	vars := map[string]any{"stages": stages, "skip": skip, "limit": limit}
	if search != "" {
		vars["search"] = search
	}
	var out jobsPayload
	if err := c.Do(ctx, token, JobsQuery, vars, &out); err != nil {
		return nil, 0, err
	}
	return out.Jobs.Results, out.Jobs.Total, nil
}

type jobPayload struct {
	Job models.Job `json:"job"`
}

func (c *Client) Job(ctx context.Context, token, id string) (models.Job, error) {
	var out jobPayload
	if err := c.Do(ctx, token, JobQuery, map[string]any{"_id": id}, &out); err != nil {
		return models.Job{}, err
	}
	return out.Job, nil
}

func (c *Client) EBAJob(ctx context.Context, token, id string) (models.Job, error) {
	var out jobPayload
	if err := c.Do(ctx, token, EBAJobQuery, map[string]any{"_id": id}, &out); err != nil {
		return models.Job{}, err
	}
	return out.Job, nil
}

// UpdateJob runs one of the updateJob mutation variants with the given
// input object (which must carry the _id).
func (c *Client) UpdateJob(ctx context.Context, token, document string, input map[string]any) error {
	return c.Do(ctx, token, document, map[string]any{"input": input}, nil)
}

type createJobPayload struct {
	CreateJob struct {
		ID        string `json:"_id"`
		JobNumber int    `json:"jobNumber"`
	} `json:"createJob"`
}

func (c *Client) CreateJob(ctx context.Context, token string, input map[string]any) (string, error) {
	var out createJobPayload
	if err := c.Do(ctx, token, CreateJobMutation, map[string]any{"input": input}, &out); err != nil {
		return "", err
	}
	return out.CreateJob.ID, nil
}

func (c *Client) ArchiveJob(ctx context.Context, token, id string) error {
	return c.Do(ctx, token, ArchiveJobMutation, map[string]any{"_id": id}, nil)
}

func (c *Client) UpdateClient(ctx context.Context, token, id string, input map[string]any) error {
	return c.Do(ctx, token, UpdateClientMutation, map[string]any{"_id": id, "input": input}, nil)
}

func (c *Client) SendEBAEmail(ctx context.Context, token, jobID string) error {
	return c.Do(ctx, token, SendEBAMutation, map[string]any{"jobId": jobID}, nil)
}

func (c *Client) SaveEBA(ctx context.Context, token string, input map[string]any, isDraft bool) error {
	return c.Do(ctx, token, SaveEBAMutation, map[string]any{"input": input, "isDraft": isDraft}, nil)
}

func (c *Client) AddFiles(ctx context.Context, token, jobID, documentType string, fileNames []string) error {
	return c.Do(ctx, token, AddFilesMutation, map[string]any{"_id": jobID, "documentType": documentType, "fileNames": fileNames}, nil)
}

func (c *Client) RemoveFile(ctx context.Context, token, jobID, documentType, fileName string) error {
	return c.Do(ctx, token, RemoveFileMutation, map[string]any{"_id": jobID, "documentType": documentType, "fileName": fileName}, nil)
}
