// Package httptask adapts net/http to taskresult.
//
// A request becomes a TaskResult that sends it every time it is invoked:
//
//	req, _ := http.NewRequest(http.MethodGet, "/users/1", nil)
//	user := httptask.ToJSON[User](client.Do(req))(ctx)
//
// Transport errors and non-2xx responses resolve to a Failure instead of
// panicking; the latter carry an *HTTPError whose body can still be read.
package httptask
