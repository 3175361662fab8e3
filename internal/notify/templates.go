package notify

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const layout = `{{define "layout"}}<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: {{.Gradient}}; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
  .card { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid {{.Accent}}; }
  .detail { margin: 10px 0; font-size: 16px; }
  .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>{{.Heading}}</h1></div>
  <div class="content">
    <p>Hi <strong>{{.Name}}</strong>,</p>
    {{template "body" .}}
    <div class="footer">
      <p>{{.SignOff}}</p>
      <p><strong>Baymax Healthcare Team</strong></p>
    </div>
  </div>
</div>
</body>
</html>{{end}}`

const appointmentBody = `{{define "body"}}
<p>This is a friendly reminder about your upcoming appointment in <strong>{{.TimeText}}</strong>.</p>
<div class="card">
  <div class="detail">📅 <strong>Date:</strong> {{.Date}}</div>
  <div class="detail">🕐 <strong>Time:</strong> {{.Time}}</div>
  <div class="detail">👨‍⚕️ <strong>Doctor:</strong> Dr. {{.DoctorName}}</div>
  <div class="detail">🏥 <strong>Specialty:</strong> {{.Specialty}}</div>
</div>
<p><strong>Important:</strong> Please arrive 10 minutes early for check-in.</p>
<p>If you need to reschedule, please contact us as soon as possible.</p>
{{end}}`

const medicationBody = `{{define "body"}}
<p>It's time to take your medication!</p>
<div class="card">
  <div class="detail">💊 <strong>Medication:</strong> {{.MedicationName}}</div>
  <div class="detail">📏 <strong>Dosage:</strong> {{.Dosage}}</div>
  <div class="detail">⏰ <strong>Time:</strong> {{.Time}}</div>
</div>
<p>Don't forget to log it in your Baymax Health dashboard!</p>
{{end}}`

const dailyGoalBody = `{{define "body"}}
<p>Here are your health goals for today. Let's make it a great day!</p>
<div class="card">
  <div class="detail">🚶 <strong>Steps:</strong> {{.StepsGoal}} steps</div>
  <div class="detail">💧 <strong>Water:</strong> {{.WaterGoal}} glasses</div>
  <div class="detail">😴 <strong>Sleep:</strong> 8 hours tonight</div>
  <div class="detail">🥗 <strong>Nutrition:</strong> Eat balanced meals</div>
</div>
<p>Track your progress in the Baymax dashboard throughout the day!</p>
{{end}}`

const testBody = `{{define "body"}}
<div class="card">
  <h2>🎉 Great News!</h2>
  <p>Your email notifications are working perfectly.</p>
  <p>You'll now receive reminders for:</p>
  <ul>
    <li>Upcoming appointments</li>
    <li>Medication schedules</li>
    <li>Daily health goals</li>
  </ul>
</div>
<p>You can manage your email preferences anytime in your dashboard settings.</p>
{{end}}`

var (
	appointmentTmpl = mustParse(appointmentBody)
	medicationTmpl  = mustParse(medicationBody)
	dailyGoalTmpl   = mustParse(dailyGoalBody)
	testTmpl        = mustParse(testBody)
)

func mustParse(body string) *template.Template {
	return template.Must(template.Must(template.New("email").Parse(layout)).Parse(body))
}

// page carries the values shared by every layout.
type page struct {
	Heading  string
	Gradient template.CSS
	Accent   template.CSS
	SignOff  string
	Name     string
}

type appointmentPage struct {
	page
	TimeText   string
	Date       string
	Time       string
	DoctorName string
	Specialty  string
}

type medicationPage struct {
	page
	MedicationName string
	Dosage         string
	Time           string
}

type dailyGoalPage struct {
	page
	StepsGoal string
	WaterGoal int
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var numbers = message.NewPrinter(language.English)

// thousands formats n with comma separators: 10000 -> "10,000".
func thousands(n int) string {
	return numbers.Sprintf("%d", n)
}
