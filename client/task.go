package client

import (
	"context"
	"net/http"

	"github.com/viant/taskmgr/schema"
)

func (c *Client) ListTasks(ctx context.Context, query *schema.TaskQuery) ([]*schema.Task, error) {
	q := schema.TaskQuery{}
	if query != nil {
		q = *query
	}
	q.Init()
	req := NewRequest(http.MethodGet, schema.PathTasks,
		WithQuery("search", q.Search),
		WithQuery("sort", q.Sort),
		WithQuery("order", q.Order))
	result, err := send[[]*schema.Task](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func (c *Client) CreateTask(ctx context.Context, input *schema.TaskInput) (*schema.Task, error) {
	req := NewRequest(http.MethodPost, schema.PathTasks, WithForm(taskForm(input)))
	return send[schema.Task](ctx, c, req)
}

func (c *Client) UpdateTask(ctx context.Context, id string, input *schema.TaskInput) (*schema.Task, error) {
	req := NewRequest(http.MethodPut, schema.PathTask, WithParam("id", id), WithForm(taskForm(input)))
	return send[schema.Task](ctx, c, req)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.Do(ctx, NewRequest(http.MethodDelete, schema.PathTask, WithParam("id", id)), nil)
}

func taskForm(input *schema.TaskInput) *Form {
	ret := &Form{Fields: map[string]string{
		"title":       input.Title,
		"description": input.Description,
	}}
	if input.Image != nil {
		ret.Files = map[string]*schema.File{"image": input.Image}
	}
	return ret
}
