// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/testutil"
)

func TestCreateWorkout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)
	accountID := testutil.CreateTestAccount(t, conn, "Grace", 32, 62, 168)

	t.Run("calories are computed from type and duration", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "running", Duration: 30}
		req := testutil.MakeRequest("POST", "/users/"+strconv.Itoa(accountID)+"/workouts", body)
		req.SetPathValue("id", strconv.Itoa(accountID))
		w := httptest.NewRecorder()

		workoutHandler.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.MessageResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != WorkoutCreated {
			t.Errorf("Expected message %q, got %q", WorkoutCreated, resp.Message)
		}

		var calories int
		err := conn.QueryRow("SELECT calories_burned FROM workouts WHERE account_id = $1", accountID).Scan(&calories)
		if err != nil {
			t.Fatalf("Failed to query workout: %v", err)
		}
		if calories != 360 {
			t.Errorf("Expected 360 computed calories, got %d", calories)
		}
	})

	t.Run("client-supplied calories are ignored", func(t *testing.T) {
		body := map[string]interface{}{
			"type":            "yoga",
			"duration":        10,
			"calories_burned": 9999,
		}
		req := testutil.MakeRequest("POST", "/users/"+strconv.Itoa(accountID)+"/workouts", body)
		req.SetPathValue("id", strconv.Itoa(accountID))
		w := httptest.NewRecorder()

		workoutHandler.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var calories int
		err := conn.QueryRow("SELECT calories_burned FROM workouts WHERE type = 'yoga'").Scan(&calories)
		if err != nil {
			t.Fatalf("Failed to query workout: %v", err)
		}
		if calories != 40 {
			t.Errorf("Expected 40 computed calories, got %d", calories)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "swimming", Duration: 20}
		req := testutil.MakeRequest("POST", "/users/999999/workouts", body)
		req.SetPathValue("id", "999999")
		w := httptest.NewRecorder()

		workoutHandler.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertErrorMessage(t, w, "Account with ID 999999 does not exist.")

		// Nothing was persisted for the rejected request.
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM workouts WHERE type = 'swimming'").Scan(&count); err != nil {
			t.Fatalf("Failed to count workouts: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected no stored workout, got %d", count)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "running2fast", Duration: 30}
		req := testutil.MakeRequest("POST", "/users/"+strconv.Itoa(accountID)+"/workouts", body)
		req.SetPathValue("id", strconv.Itoa(accountID))
		w := httptest.NewRecorder()

		workoutHandler.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertErrorMessage(t, w, "Workout type must contain only letters and spaces.")
	})

	t.Run("non-positive duration", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "running", Duration: 0}
		req := testutil.MakeRequest("POST", "/users/"+strconv.Itoa(accountID)+"/workouts", body)
		req.SetPathValue("id", strconv.Itoa(accountID))
		w := httptest.NewRecorder()

		workoutHandler.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertErrorMessage(t, w, "Duration must be a positive number.")
	})
}

func TestGetWorkout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)
	accountID := testutil.CreateTestAccount(t, conn, "Heidi", 29, 58, 165)
	id := testutil.CreateTestWorkout(t, conn, "cycling", 45, 315, accountID)

	t.Run("existing workout", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts/"+strconv.Itoa(id), nil)
		req.SetPathValue("id", strconv.Itoa(id))
		w := httptest.NewRecorder()

		workoutHandler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var workout models.Workout
		testutil.AssertJSON(t, w, &workout)
		if workout.ID != id || workout.Type != "cycling" || workout.CaloriesBurned != 315 || workout.AccountID != accountID {
			t.Errorf("Unexpected workout: %+v", workout)
		}
	})

	t.Run("missing workout", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts/999999", nil)
		req.SetPathValue("id", "999999")
		w := httptest.NewRecorder()

		workoutHandler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertErrorMessage(t, w, "Workout not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		workoutHandler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertErrorMessage(t, w, InvalidWorkoutID)
	})
}

func TestListWorkouts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)

	t.Run("empty store", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts", nil)
		w := httptest.NewRecorder()

		workoutHandler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var workouts []models.Workout
		testutil.AssertJSON(t, w, &workouts)
		if len(workouts) != 0 {
			t.Errorf("Expected empty list, got %d workouts", len(workouts))
		}
	})

	accountID := testutil.CreateTestAccount(t, conn, "Ivan", 41, 88, 183)
	testutil.CreateTestWorkout(t, conn, "running", 30, 360, accountID)
	testutil.CreateTestWorkout(t, conn, "yoga", 60, 240, accountID)

	t.Run("two workouts", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts", nil)
		w := httptest.NewRecorder()

		workoutHandler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var workouts []models.Workout
		testutil.AssertJSON(t, w, &workouts)
		if len(workouts) != 2 {
			t.Errorf("Expected 2 workouts, got %d", len(workouts))
		}
	})
}

func TestListWorkoutsByAccount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)
	accountID := testutil.CreateTestAccount(t, conn, "Judy", 36, 70, 172)
	other := testutil.CreateTestAccount(t, conn, "Mallory", 33, 64, 169)
	testutil.CreateTestWorkout(t, conn, "swimming", 60, 480, accountID)
	testutil.CreateTestWorkout(t, conn, "running", 15, 180, other)

	t.Run("only owned workouts", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts/users/"+strconv.Itoa(accountID), nil)
		req.SetPathValue("id", strconv.Itoa(accountID))
		w := httptest.NewRecorder()

		workoutHandler.ListByAccount(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var workouts []models.Workout
		testutil.AssertJSON(t, w, &workouts)
		if len(workouts) != 1 || workouts[0].Type != "swimming" {
			t.Errorf("Unexpected workouts: %v", workouts)
		}
	})

	t.Run("unknown account yields empty list", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/workouts/users/777777", nil)
		req.SetPathValue("id", "777777")
		w := httptest.NewRecorder()

		workoutHandler.ListByAccount(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var workouts []models.Workout
		testutil.AssertJSON(t, w, &workouts)
		if len(workouts) != 0 {
			t.Errorf("Expected empty list, got %v", workouts)
		}
	})
}

func TestUpdateWorkout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)
	accountID := testutil.CreateTestAccount(t, conn, "Kim", 27, 57, 162)
	id := testutil.CreateTestWorkout(t, conn, "running", 30, 360, accountID)

	t.Run("update recomputes calories and keeps owner", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "cycling", Duration: 45}
		req := testutil.MakeRequest("PUT", "/workouts/"+strconv.Itoa(id), body)
		req.SetPathValue("id", strconv.Itoa(id))
		w := httptest.NewRecorder()

		workoutHandler.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.MessageResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != WorkoutUpdated {
			t.Errorf("Expected message %q, got %q", WorkoutUpdated, resp.Message)
		}

		var workoutType string
		var calories, owner int
		err := conn.QueryRow("SELECT type, calories_burned, account_id FROM workouts WHERE id = $1", id).
			Scan(&workoutType, &calories, &owner)
		if err != nil {
			t.Fatalf("Failed to query workout: %v", err)
		}
		if workoutType != "cycling" || calories != 315 {
			t.Errorf("Update not recomputed: type=%s calories=%d", workoutType, calories)
		}
		if owner != accountID {
			t.Errorf("Owner changed on update: expected %d, got %d", accountID, owner)
		}
	})

	t.Run("missing workout", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "running", Duration: 10}
		req := testutil.MakeRequest("PUT", "/workouts/313131", body)
		req.SetPathValue("id", "313131")
		w := httptest.NewRecorder()

		workoutHandler.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		testutil.AssertErrorMessage(t, w, "Workout not found")
	})

	t.Run("invalid duration", func(t *testing.T) {
		body := models.WorkoutRequest{Type: "running", Duration: -5}
		req := testutil.MakeRequest("PUT", "/workouts/"+strconv.Itoa(id), body)
		req.SetPathValue("id", strconv.Itoa(id))
		w := httptest.NewRecorder()

		workoutHandler.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		testutil.AssertErrorMessage(t, w, "Duration must be a positive number.")
	})
}

func TestDeleteWorkout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	_, _, workoutHandler := newTestHandlers(conn)
	accountID := testutil.CreateTestAccount(t, conn, "Leo", 38, 82, 179)
	id := testutil.CreateTestWorkout(t, conn, "yoga", 20, 80, accountID)

	req := testutil.MakeRequest("DELETE", "/workouts/"+strconv.Itoa(id), nil)
	req.SetPathValue("id", strconv.Itoa(id))
	w := httptest.NewRecorder()

	workoutHandler.Delete(w, req)

	// Workout deletion answers 200 with a message body.
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != WorkoutDeleted {
		t.Errorf("Expected message %q, got %q", WorkoutDeleted, resp.Message)
	}

	again := testutil.MakeRequest("DELETE", "/workouts/"+strconv.Itoa(id), nil)
	again.SetPathValue("id", strconv.Itoa(id))
	againW := httptest.NewRecorder()
	workoutHandler.Delete(againW, again)
	testutil.AssertStatus(t, againW, http.StatusNotFound)
	testutil.AssertErrorMessage(t, againW, "Workout not found")
}
