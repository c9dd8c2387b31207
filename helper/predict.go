package helper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

func timeToMinutes(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return float64(hours*60 + minutes)
}

func minutesToTime(minutes float64) string {
	hours := int(minutes/60) % 24
	mins := int(minutes) % 60
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// PredictLogoutTime fits a linear regression over recent (clock-in,
// clock-out) pairs and estimates the logout time for a new clock-in. This is
// a habit estimate, separate from the rule-based required logout.
func PredictLogoutTime(history [][2]string, clockInTime string) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("no training data available")
	}

	var csvBuffer bytes.Buffer
	csvBuffer.WriteString("logout_minutes,login_minutes\n")
	for _, record := range history {
		loginMinutes := timeToMinutes(record[0])
		logoutMinutes := timeToMinutes(record[1])
		csvBuffer.WriteString(fmt.Sprintf("%.2f,%.2f\n", logoutMinutes, loginMinutes))
	}

	instances, err := base.ParseCSVToInstances(csvBuffer.String(), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse training data: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}

	predCSV := fmt.Sprintf("logout_minutes,login_minutes\n0.0,%.2f\n", timeToMinutes(clockInTime))
	predInstances, err := base.ParseCSVToInstances(predCSV, true)
	if err != nil {
		return "", fmt.Errorf("failed to parse prediction data: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return "", fmt.Errorf("prediction failed: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return "", fmt.Errorf("no class attribute in predictions")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	predictedMinutes := base.UnpackBytesToFloat(predictions.Get(classSpec, 0))
	return minutesToTime(predictedMinutes), nil
}

// LogoutTrainingData collects the employee's last 10 completed sessions as
// ("HH:MM" in, "HH:MM" out) pairs.
func LogoutTrainingData(db *gorm.DB, employeeID int64) ([][2]string, error) {
	var sessions []models.WorkSession
	err := db.Where("employee_id = ? AND end_time IS NOT NULL", employeeID).
		Order("id desc").Limit(10).Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	var history [][2]string
	for _, s := range sessions {
		if s.EndTime != nil {
			history = append(history, [2]string{
				s.StartTime.Format("15:04"),
				s.EndTime.Format("15:04"),
			})
		}
	}
	return history, nil
}
