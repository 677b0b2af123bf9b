package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the survey question icon to "-" to match the huh forms.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
