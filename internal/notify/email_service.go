package notify

import (
	"context"
	"fmt"
	"html/template"
	"log"
)

// EmailService renders reminder emails and hands them to a Mailer.
// Every Send* method reports delivery as a bool and never returns an error.
type EmailService struct {
	mailer Mailer
	logger *log.Logger
}

func NewEmailService(mailer Mailer, logger *log.Logger) *EmailService {
	if logger == nil {
		logger = log.Default()
	}
	return &EmailService{mailer: mailer, logger: logger}
}

func (s *EmailService) SendEmail(ctx context.Context, to, subject, html string) bool {
	if err := s.mailer.Send(ctx, to, subject, html); err != nil {
		s.logger.Printf("failed to send email to %s: %v", to, err)
		return false
	}
	return true
}

func (s *EmailService) SendAppointmentReminder(
	ctx context.Context,
	email string,
	name string,
	doctorName string,
	specialty string,
	date string,
	timeStr string,
	hoursUntil int,
) bool {

	timeText := "1 hour"
	if hoursUntil > 1 {
		timeText = fmt.Sprintf("%d hours", hoursUntil)
	}

	subject := fmt.Sprintf("Reminder: Appointment with Dr. %s in %s", doctorName, timeText)

	html, err := render(appointmentTmpl, appointmentPage{
		page: page{
			Heading:  "🏥 Appointment Reminder",
			Gradient: template.CSS("linear-gradient(135deg, #667eea 0%, #764ba2 100%)"),
			Accent:   template.CSS("#667eea"),
			SignOff:  "Stay healthy! 💙",
			Name:     name,
		},
		TimeText:   timeText,
		Date:       date,
		Time:       timeStr,
		DoctorName: doctorName,
		Specialty:  specialty,
	})
	if err != nil {
		s.logger.Printf("render appointment reminder: %v", err)
		return false
	}

	return s.SendEmail(ctx, email, subject, html)
}

func (s *EmailService) SendMedicationReminder(
	ctx context.Context,
	email string,
	name string,
	medicationName string,
	dosage string,
	timeStr string,
) bool {

	subject := fmt.Sprintf("💊 Time to Take Your Medication: %s", medicationName)

	html, err := render(medicationTmpl, medicationPage{
		page: page{
			Heading:  "💊 Medication Reminder",
			Gradient: template.CSS("linear-gradient(135deg, #f093fb 0%, #f5576c 100%)"),
			Accent:   template.CSS("#f5576c"),
			SignOff:  "Stay consistent with your medication! 💙",
			Name:     name,
		},
		MedicationName: medicationName,
		Dosage:         dosage,
		Time:           timeStr,
	})
	if err != nil {
		s.logger.Printf("render medication reminder: %v", err)
		return false
	}

	return s.SendEmail(ctx, email, subject, html)
}

func (s *EmailService) SendDailyGoalReminder(
	ctx context.Context,
	email string,
	name string,
	stepsGoal int,
	waterGoal int,
) bool {

	subject := "🌅 Good Morning! Your Health Goals for Today"

	html, err := render(dailyGoalTmpl, dailyGoalPage{
		page: page{
			Heading:  "🌅 Good Morning!",
			Gradient: template.CSS("linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)"),
			Accent:   template.CSS("#4facfe"),
			SignOff:  "You've got this! 💪",
			Name:     name,
		},
		StepsGoal: thousands(stepsGoal),
		WaterGoal: waterGoal,
	})
	if err != nil {
		s.logger.Printf("render daily goal reminder: %v", err)
		return false
	}

	return s.SendEmail(ctx, email, subject, html)
}

func (s *EmailService) SendTestEmail(ctx context.Context, email, name string) bool {
	subject := "✅ Baymax Email Notifications - Test Successful"

	html, err := render(testTmpl, page{
		Heading:  "✅ Email Test Successful!",
		Gradient: template.CSS("linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)"),
		Accent:   template.CSS("#43e97b"),
		SignOff:  "Welcome to Baymax Healthcare! 💙",
		Name:     name,
	})
	if err != nil {
		s.logger.Printf("render test email: %v", err)
		return false
	}

	return s.SendEmail(ctx, email, subject, html)
}
