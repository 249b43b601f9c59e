package cdn

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"someicons/internal/model"
	"someicons/internal/store"
)

// Client CDN 客户端
// 拉取图标目录（index.json）与 SVG 资源。
// 目录每次都向 CDN 重新验证；SVG 内容不可变，内存缓存 + SQLite 落盘，
// 同一路径的并发未命中会合并为一次网络请求。
type Client struct {
	baseURL string
	http    *http.Client
	store   *store.Store // 可为 nil（仅内存缓存）

	mu       sync.Mutex
	cache    map[string]string
	inflight map[string]*fetchCall
}

type fetchCall struct {
	done chan struct{}
	body string
	err  error
}

// NewClient 创建 CDN 客户端
// st 可为 nil，此时不做持久化缓存。
func NewClient(baseURL string, timeout time.Duration, st *store.Store) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/") + "/",
		http:     &http.Client{Timeout: timeout},
		store:    st,
		cache:    make(map[string]string),
		inflight: make(map[string]*fetchCall),
	}
}

func (c *Client) get(path string) (string, error) {
	url := c.baseURL + strings.TrimLeft(path, "/")

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 CDN 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("CDN 返回 %d: %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取 CDN 响应失败: %w", err)
	}
	return string(body), nil
}

// FetchIndex 拉取图标目录
// 网络失败时回退到本地快照（若有）。
func (c *Client) FetchIndex() (*model.IconIndex, error) {
	body, err := c.get("index.json")
	if err != nil {
		if c.store != nil {
			if snapshot, ok, serr := c.store.GetCatalogSnapshot(); serr == nil && ok {
				body = snapshot
			} else {
				return nil, err
			}
		} else {
			return nil, err
		}
	} else if c.store != nil {
		_ = c.store.PutCatalogSnapshot(body)
	}

	var index model.IconIndex
	if err := json.Unmarshal([]byte(body), &index); err != nil {
		return nil, fmt.Errorf("解析图标目录失败: %w", err)
	}
	return &index, nil
}

// FetchSVG 拉取 SVG 资源文本
// 命中顺序：内存缓存 → SQLite 缓存 → 网络；
// 并发请求同一未缓存路径时只发起一次网络请求，其余等待结果。
func (c *Client) FetchSVG(path string) (string, error) {
	c.mu.Lock()
	if body, ok := c.cache[path]; ok {
		c.mu.Unlock()
		return body, nil
	}
	if call, ok := c.inflight[path]; ok {
		c.mu.Unlock()
		<-call.done
		return call.body, call.err
	}
	call := &fetchCall{done: make(chan struct{})}
	c.inflight[path] = call
	c.mu.Unlock()

	body, err := c.fetchSVGUncached(path)

	call.body = body
	call.err = err

	c.mu.Lock()
	if err == nil {
		c.cache[path] = body
	}
	delete(c.inflight, path)
	c.mu.Unlock()

	close(call.done)
	return body, err
}

func (c *Client) fetchSVGUncached(path string) (string, error) {
	if c.store != nil {
		if body, ok, err := c.store.GetSVG(path); err == nil && ok {
			return body, nil
		}
	}

	body, err := c.get(path)
	if err != nil {
		return "", err
	}

	if c.store != nil {
		_ = c.store.PutSVG(path, body)
	}
	return body, nil
}

// CachedCount 内存缓存条数（用于状态上报）
func (c *Client) CachedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
