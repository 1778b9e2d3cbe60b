package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

type taskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func Test_Tasks_CRUD_OwnScope(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	token, _, _ := signupAndLogin(t, c, ctx, "tasks")

	//作成（statusとpriority省略時はデフォルトが入る）
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/tasks", token,
		mustMarshal(t, taskInput{Title: "buy milk", Description: "2 liters"}))
	requireStatus(t, resp, http.StatusOK, body)

	msg := mustDecodeMessage(t, body)
	if msg.Message != "Task created successfully!" {
		t.Fatalf("unexpected message: %s", msg.Message)
	}

	//一覧に出るか
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks", token, nil)
	requireStatus(t, resp, http.StatusOK, body)

	var tasks []TaskDTO
	if err := json.Unmarshal(body, &tasks); err != nil {
		t.Fatalf("json.Unmarshal([]TaskDTO) failed: %v body=%s", err, string(body))
	}
	if len(tasks) != 1 {
		t.Fatalf("task count want=1 got=%d", len(tasks))
	}
	if tasks[0].Status != "Pending" || tasks[0].Priority != "Normal" {
		t.Fatalf("defaults not applied: %+v", tasks[0])
	}

	taskID := tasks[0].ID

	//1件取得
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks/"+toStr(taskID), token, nil)
	requireStatus(t, resp, http.StatusOK, body)

	//更新
	resp, body = c.doJSON(ctx, t, http.MethodPut, "/tasks/"+toStr(taskID), token,
		mustMarshal(t, taskInput{Title: "buy milk", Status: "Completed", Priority: "High"}))
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks/"+toStr(taskID), token, nil)
	requireStatus(t, resp, http.StatusOK, body)

	var got TaskDTO
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("json.Unmarshal(TaskDTO) failed: %v body=%s", err, string(body))
	}
	if got.Status != "Completed" || got.Priority != "High" {
		t.Fatalf("update not applied: %+v", got)
	}

	//削除
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/tasks/"+toStr(taskID), token, nil)
	requireStatus(t, resp, http.StatusOK, body)

	//削除後は404
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks/"+toStr(taskID), token, nil)
	requireStatus(t, resp, http.StatusNotFound, body)
}

// 他人のタスクは存在ごと見えない（404）
func Test_Tasks_OtherUsersTaskHidden(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	ownerToken, _, _ := signupAndLogin(t, c, ctx, "owner")
	otherToken, _, _ := signupAndLogin(t, c, ctx, "other")

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/tasks", ownerToken,
		mustMarshal(t, taskInput{Title: "secret task"}))
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks", ownerToken, nil)
	requireStatus(t, resp, http.StatusOK, body)

	var tasks []TaskDTO
	if err := json.Unmarshal(body, &tasks); err != nil {
		t.Fatalf("json.Unmarshal([]TaskDTO) failed: %v body=%s", err, string(body))
	}
	if len(tasks) != 1 {
		t.Fatalf("task count want=1 got=%d", len(tasks))
	}
	taskID := tasks[0].ID

	//別ユーザーからは取得も更新も削除も404
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks/"+toStr(taskID), otherToken, nil)
	requireStatus(t, resp, http.StatusNotFound, body)

	er := mustDecodeError(t, body)
	if er.Message != "Task not found or unauthorized" {
		t.Fatalf("unexpected error message: %s", er.Message)
	}

	resp, body = c.doJSON(ctx, t, http.MethodPut, "/tasks/"+toStr(taskID), otherToken,
		mustMarshal(t, taskInput{Title: "hijack"}))
	requireStatus(t, resp, http.StatusNotFound, body)

	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/tasks/"+toStr(taskID), otherToken, nil)
	requireStatus(t, resp, http.StatusNotFound, body)

	//本人からはまだ見える
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/tasks/"+toStr(taskID), ownerToken, nil)
	requireStatus(t, resp, http.StatusOK, body)
}

func Test_Tasks_InvalidInputRejected(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	token, _, _ := signupAndLogin(t, c, ctx, "invalid")

	//titleなしは400
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/tasks", token,
		mustMarshal(t, taskInput{Description: "no title"}))
	requireStatus(t, resp, http.StatusBadRequest, body)

	//未知のstatusも400
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/tasks", token,
		mustMarshal(t, taskInput{Title: "x", Status: "Done"}))
	requireStatus(t, resp, http.StatusBadRequest, body)
}
