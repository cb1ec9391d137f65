// Package client implements a Go client for the task manager REST backend.
//
// Every call goes through Do, which builds the request, sends it with an
// http.Client whose transport attaches and refreshes credentials, and decodes
// the response envelope. Feature methods (Login, ListTasks, BlockUser, ...) are
// thin typed wrappers and never deal with token refresh themselves.
//
// Example:
//
//	tokens := store.NewMemoryStore()
//	rt, _ := transport.New(transport.WithStore(tokens), transport.WithRefresher(refresh.New(baseURL)))
//	cli := client.New(baseURL, &http.Client{Transport: rt}, tokens)
//	_, _ = cli.Login(ctx, &schema.Credentials{Email: "ann@example.com", Password: "secret"})
//	tasks, _ := cli.ListTasks(ctx, &schema.TaskQuery{Search: "report"})
package client
