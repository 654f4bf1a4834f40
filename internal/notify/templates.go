package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

var textTmpl = texttemplate.Must(texttemplate.New("order").Parse(textBody))

var htmlTmpl = htmltemplate.Must(htmltemplate.New("order").Parse(htmlBody))

const textBody = `New order {{.ID}}
Placed at {{.PlacedAt}}

Items:
{{range .Lines}}  - {{.Name}} x{{.Qty}} @ {{.UnitPrice}} = {{.LineTotal}}
{{end}}
Items total: {{.ItemsTotal}}
{{if .ShippingName}}Shipping: {{.ShippingName}} ({{.ShippingFee}})
{{else}}Shipping: none selected
{{end}}{{if .PaymentName}}Payment: {{.PaymentName}}
{{end}}Grand total: {{.GrandTotal}}

Buyer:
  Name: {{.Buyer.Name}}
  Email: {{.Buyer.Email}}
{{if .Buyer.Phone}}  Phone: {{.Buyer.Phone}}
{{end}}{{if .Buyer.Address}}  Address: {{.Buyer.Address}}
{{end}}{{if .Buyer.Note}}  Note: {{.Buyer.Note}}
{{end}}`

const htmlBody = `<h2>New order {{.ID}}</h2>
<p>Placed at {{.PlacedAt}}</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th align="left">Item</th><th>Qty</th><th align="right">Unit</th><th align="right">Total</th></tr>
{{range .Lines}}<tr><td>{{.Name}}</td><td align="center">{{.Qty}}</td><td align="right">{{.UnitPrice}}</td><td align="right">{{.LineTotal}}</td></tr>
{{end}}<tr><td colspan="3" align="right">Items total</td><td align="right">{{.ItemsTotal}}</td></tr>
<tr><td colspan="3" align="right">{{if .ShippingName}}Shipping ({{.ShippingName}}){{else}}Shipping (none selected){{end}}</td><td align="right">{{.ShippingFee}}</td></tr>
<tr><td colspan="3" align="right"><strong>Grand total</strong></td><td align="right"><strong>{{.GrandTotal}}</strong></td></tr>
</table>
{{if .PaymentName}}<p>Payment: {{.PaymentName}}</p>
{{end}}<h3>Buyer</h3>
<p>{{.Buyer.Name}}<br>
{{.Buyer.Email}}<br>
{{if .Buyer.Phone}}{{.Buyer.Phone}}<br>
{{end}}{{if .Buyer.Address}}{{.Buyer.Address}}<br>
{{end}}</p>
{{if .Buyer.Note}}<p>Note: {{.Buyer.Note}}</p>
{{end}}`
