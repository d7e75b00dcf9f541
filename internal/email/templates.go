package email

import "html/template"

var resetCodeTemplate = template.Must(template.New("reset_code").Parse(`
<html>
<body>
  <h2>Password reset</h2>
  <p>Your password reset code is:</p>
  <h1>{{.Code}}</h1>
  <p>The code expires in a few minutes. If you did not request a reset, ignore this email.</p>
</body>
</html>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
<body>
  <h2>Welcome, {{.Name}}!</h2>
  <p>Your InspiraHub account has been created. Share your content and join the discussion.</p>
</body>
</html>
`))
