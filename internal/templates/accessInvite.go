package templates

const accessInviteTmpl = `
<div>
	{{# Sandbox }}<p style="font-size:14px; color:#000000; margin:0 0 12px 0; font-weight: 600;">**NOTE: this is a sandbox test message**</p>{{/ Sandbox }}
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">Hi {{ Name }},</p>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">Your campaign portal is ready. Use the access code below to review and approve your proposed creators:</p>
	<p style="font-size:18px; color:#000000; margin:0 0 12px 0; font-weight: 600;">{{ Code }}</p>
	<p style="font-size:14px; color:#000000; margin:0;">Enter it at <a href="{{ URL }}">{{ URL }}</a> to get started.</p>
	<p style="font-size:14px; color:#000000; margin:0;">Kind regards,</p>
	<p style="font-size:14px; color:#000000; margin:0;">~ The Creator Team</p>
</div>
`

var AccessInvite = MustacheMust(accessInviteTmpl)
