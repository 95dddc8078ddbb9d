package utils

import (
	"context"
	"fmt"
	"sync"
)

type fetchKey struct {
	url    string
	follow bool
}

type fetchReply struct {
	hops []RedirectHop
	err  error
}

// scriptedFetcher replays canned redirect histories. Unknown requests time
// out.
type scriptedFetcher struct {
	mu     sync.Mutex
	routes map[fetchKey]fetchReply
	calls  []fetchKey
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{routes: make(map[fetchKey]fetchReply)}
}

func (f *scriptedFetcher) follow(rawURL string, hops ...RedirectHop) *scriptedFetcher {
	f.routes[fetchKey{rawURL, true}] = fetchReply{hops: hops}
	return f
}

func (f *scriptedFetcher) direct(rawURL string, hops ...RedirectHop) *scriptedFetcher {
	f.routes[fetchKey{rawURL, false}] = fetchReply{hops: hops}
	return f
}

func (f *scriptedFetcher) fail(rawURL string, follow bool, err error) *scriptedFetcher {
	f.routes[fetchKey{rawURL, follow}] = fetchReply{err: err}
	return f
}

func (f *scriptedFetcher) Head(_ context.Context, rawURL string, follow bool) ([]RedirectHop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := fetchKey{rawURL, follow}
	f.calls = append(f.calls, key)
	reply, ok := f.routes[key]
	if !ok {
		return nil, fmt.Errorf("%w: no scripted response for %s", ErrTimeout, rawURL)
	}
	return reply.hops, reply.err
}

func hop(status int, rawURL string) RedirectHop {
	return RedirectHop{StatusCode: status, URL: rawURL}
}
