// Package taskmgr wires the task manager client: a credential store, the
// token exchange client, the authenticating transport and the feature client.
//
// Most callers only need NewClient:
//
//	cli, err := taskmgr.NewClient(ctx, &taskmgr.ClientOptions{
//		BaseURL: "http://localhost:8080/api",
//		Store:   taskmgr.ClientStore{Type: taskmgr.StoreFile, URL: "~/.taskctl/credentials.json"},
//	})
//	tasks, err := cli.ListTasks(ctx, nil)
package taskmgr
