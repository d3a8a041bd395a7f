// Package api is the HTTP client for the remote timesheet service. All
// server state lives behind these endpoints; the client never caches
// responses beyond the lifetime of a command.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nconsulting/timecard/internal/domain"
)

// Client is the full surface of the timesheet service consumed by timecard.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	GetTimesheetByMonth(ctx context.Context, monthYear, username string) (*MonthDetail, error)
	SaveTimesheet(ctx context.Context, req SaveTimesheetRequest) error
	UpdateTimesheetStatus(ctx context.Context, req StatusChangeRequest) error
	BulkUpdateTimesheetStatus(ctx context.Context, reqs []StatusChangeRequest) error
	GetActivityLog(ctx context.Context, monthYear, username string) ([]domain.AuditLogEntry, error)
	GetMonthOverview(ctx context.Context, monthYear string) ([]domain.OverviewRow, error)

	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, email string) (*domain.Employee, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	SaveEmployee(ctx context.Context, e domain.Employee, isEdit bool) error
	UpdateEmployeeStatus(ctx context.Context, email string, active bool) error
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	ListProjects(ctx context.Context) ([]domain.Project, error)
	SaveProject(ctx context.Context, p domain.Project) error
	UpdateProjectStatus(ctx context.Context, projectID int, status string) error

	ListTasks(ctx context.Context) ([]domain.Task, error)
	SaveTask(ctx context.Context, t domain.Task) error
	TaskUserList(ctx context.Context) ([]domain.Employee, error)
	GetTaskManagers(ctx context.Context) (*ManagerLists, error)

	ListHolidays(ctx context.Context) ([]domain.HolidayEvent, error)
	SaveHolidays(ctx context.Context, events []domain.HolidayEvent) error
	DeleteHoliday(ctx context.Context, holidayID int) error
}

// Config holds the HTTP client settings. Token may be empty for Login.
type Config struct {
	BaseURL   string
	Token     string
	TimeoutMs int
}

type httpClient struct {
	cfg  Config
	http *http.Client
	obs  Observer
}

// New creates a Client against the configured base URL.
func New(cfg Config, obs Observer) Client {
	if obs == nil {
		obs = NoopObserver{}
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 15000
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		obs: obs,
	}
}

// serverEnvelope is the error shape the service returns on failures.
type serverEnvelope struct {
	Message string `json:"message"`
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Callers pass a nil body for bare GET/DELETE calls.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, path, 0, start, "unreachable")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, path, resp.StatusCode, start, "read")
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.observe(method, path, resp.StatusCode, start, "unauthorized")
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env serverEnvelope
		_ = json.Unmarshal(data, &env)
		c.observe(method, path, resp.StatusCode, start, "server")
		return &ServerError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.observe(method, path, resp.StatusCode, start, "decode")
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
	}

	c.observe(method, path, resp.StatusCode, start, "")
	return nil
}

func (c *httpClient) observe(method, path string, status int, start time.Time, errCode string) {
	c.obs.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   errCode == "",
		ErrorCode: errCode,
	})
}

func (c *httpClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "Auth/Login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetTimesheetByMonth(ctx context.Context, monthYear, username string) (*MonthDetail, error) {
	path := "TimeSheet/GetTimesheetByMonth"
	if username != "" {
		path += "?userName=" + url.QueryEscape(username)
	}
	var out MonthDetail
	body := map[string]string{"MonthYear": monthYear}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) SaveTimesheet(ctx context.Context, req SaveTimesheetRequest) error {
	return c.do(ctx, http.MethodPost, "TimeSheet/InsertOrUpdateTimesheet", req, nil)
}

func (c *httpClient) UpdateTimesheetStatus(ctx context.Context, req StatusChangeRequest) error {
	return c.do(ctx, http.MethodPost, "TimeSheet/UpdateTimesheetStatus", req, nil)
}

func (c *httpClient) BulkUpdateTimesheetStatus(ctx context.Context, reqs []StatusChangeRequest) error {
	return c.do(ctx, http.MethodPost, "TimeSheet/BulkUpdateTimesheetStatus", reqs, nil)
}

func (c *httpClient) GetActivityLog(ctx context.Context, monthYear, username string) ([]domain.AuditLogEntry, error) {
	path := "TimeSheet/GetActivityLog"
	if username != "" {
		path += "?userName=" + url.QueryEscape(username)
	}
	var out []domain.AuditLogEntry
	body := map[string]string{"MonthYear": monthYear}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) GetMonthOverview(ctx context.Context, monthYear string) ([]domain.OverviewRow, error) {
	var out []domain.OverviewRow
	path := "TimeSheet/GetTimesheet?month=" + url.QueryEscape(monthYear)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.do(ctx, http.MethodGet, "User/All", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) GetEmployee(ctx context.Context, email string) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, http.MethodGet, "User/GetUser/"+url.PathEscape(email), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		EmailExists bool `json:"emailExists"`
	}
	path := "User/CheckEmail?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out.EmailExists, nil
}

func (c *httpClient) SaveEmployee(ctx context.Context, e domain.Employee, isEdit bool) error {
	path := "User/Add"
	if isEdit {
		path = "User/Edit"
	}
	return c.do(ctx, http.MethodPost, path, e, nil)
}

func (c *httpClient) UpdateEmployeeStatus(ctx context.Context, email string, active bool) error {
	// Path spelling matches the deployed service route.
	body := map[string]any{"email": email, "isActive": active}
	return c.do(ctx, http.MethodPost, "User/UpdateUserStaus", body, nil)
}

func (c *httpClient) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	if err := c.do(ctx, http.MethodGet, "Department/GetAllDepartment", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, "Project/GetAllProjects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) SaveProject(ctx context.Context, p domain.Project) error {
	return c.do(ctx, http.MethodPost, "Project/InsertOrUpdateProject", p, nil)
}

func (c *httpClient) UpdateProjectStatus(ctx context.Context, projectID int, status string) error {
	body := map[string]any{"projectId": projectID, "status": status}
	return c.do(ctx, http.MethodPost, "Project/UpdateProjectStatus", body, nil)
}

func (c *httpClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var out []domain.Task
	if err := c.do(ctx, http.MethodGet, "Task/GetTasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) SaveTask(ctx context.Context, t domain.Task) error {
	return c.do(ctx, http.MethodPost, "Task/SaveTask", t, nil)
}

func (c *httpClient) TaskUserList(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.do(ctx, http.MethodGet, "Task/TaskUserList", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) GetTaskManagers(ctx context.Context) (*ManagerLists, error) {
	var out ManagerLists
	if err := c.do(ctx, http.MethodGet, "Account/GetTaskManager", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ListHolidays(ctx context.Context) ([]domain.HolidayEvent, error) {
	var out []domain.HolidayEvent
	if err := c.do(ctx, http.MethodGet, "Holiday/GetHolidays", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) SaveHolidays(ctx context.Context, events []domain.HolidayEvent) error {
	return c.do(ctx, http.MethodPost, "Holiday/SaveHoliday", events, nil)
}

func (c *httpClient) DeleteHoliday(ctx context.Context, holidayID int) error {
	path := "Holiday/DeleteHoliday?holidayId=" + strconv.Itoa(holidayID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
