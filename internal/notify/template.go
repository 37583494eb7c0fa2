package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"maktaba-be/internal/order"
)

var statusLabels = map[order.Status]string{
	order.StatusPending:   "قيد الانتظار",
	order.StatusConfirmed: "تم التأكيد",
	order.StatusShipped:   "تم الشحن",
	order.StatusDelivered: "تم التوصيل",
	order.StatusCancelled: "تم الإلغاء",
}

// StatusLabel returns the Arabic display name for a status. Unknown values
// pass through unchanged.
func StatusLabel(s order.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type itemView struct {
	Title     string
	Quantity  int
	UnitPrice string
}

type orderView struct {
	ID           int
	CustomerName string
	StatusLabel  string
	Items        []itemView
	Total        string
	Address      string
	City         string
	WilayaName   string
}

func viewOf(o *order.Order) orderView {
	v := orderView{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		StatusLabel:  StatusLabel(o.Status),
		Total:        o.Total.String(),
		Address:      o.Address,
		City:         o.City,
	}
	if o.WilayaName != nil {
		v.WilayaName = *o.WilayaName
	}
	for _, it := range o.Items {
		title := "كتاب"
		if it.Book != nil && it.Book.TitleAr != "" {
			title = it.Book.TitleAr
		}
		v.Items = append(v.Items, itemView{
			Title:     title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
		})
	}
	return v
}

var newOrderTmpl = template.Must(template.New("newOrder").Parse(`
<div dir="rtl" style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #eee; padding: 20px;">
  <h2 style="color: #1a4731; text-align: center;">شكراً لطلبكم من دار علي بن زيد</h2>
  <p>مرحباً <strong>{{.CustomerName}}</strong>،</p>
  <p>لقد تلقينا طلبك بنجاح. رقم الطلب هو: <strong>#{{.ID}}</strong></p>
  <p>حالة الطلب الحالية: <strong>قيد الانتظار</strong></p>

  <h3>محتويات الطلب:</h3>
  <ul>
    {{range .Items}}<li>{{.Title}} (الكمية: {{.Quantity}}) - {{.UnitPrice}} DZD</li>{{end}}
  </ul>

  <p><strong>الإجمالي:</strong> {{.Total}} DZD</p>
  <p>سنتصل بك قريباً لتأكيد الشحن.</p>
</div>
`))

var statusTmpl = template.Must(template.New("statusUpdate").Parse(`
<div dir="rtl" style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #eee; padding: 20px;">
  <h2 style="color: #1a4731; text-align: center;">دار علي بن زيد للطباعة والنشر</h2>
  <hr />
  <p>مرحباً <strong>{{.CustomerName}}</strong>،</p>
  <p>تم تحديث حالة طلبك رقم <strong>#{{.ID}}</strong> إلى: <span style="color: #e67e22; font-weight: bold;">{{.StatusLabel}}</span></p>

  <h3>تفاصيل الطلب:</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="background-color: #f8f9fa;">
        <th style="padding: 10px; border: 1px solid #ddd; text-align: right;">الكتاب</th>
        <th style="padding: 10px; border: 1px solid #ddd; text-align: center;">الكمية</th>
        <th style="padding: 10px; border: 1px solid #ddd; text-align: left;">السعر</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}<tr>
        <td style="padding: 10px; border: 1px solid #ddd;">{{.Title}}</td>
        <td style="padding: 10px; border: 1px solid #ddd; text-align: center;">{{.Quantity}}</td>
        <td style="padding: 10px; border: 1px solid #ddd; text-align: left;">{{.UnitPrice}} DZD</td>
      </tr>{{end}}
    </tbody>
  </table>

  <p style="margin-top: 20px;">
    <strong>المجموع:</strong> {{.Total}} DZD <br />
    <strong>العنوان:</strong> {{.Address}}, {{.City}}, {{.WilayaName}}
  </p>

  <hr />
  <p style="font-size: 12px; color: #777; text-align: center;">شكراً لتسوقكم من دار علي بن زيد للطباعة والنشر</p>
</div>
`))

func renderNewOrder(o *order.Order) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := newOrderTmpl.Execute(&buf, viewOf(o)); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("تأكيد طلب جديد رقم #%d", o.ID), buf.String(), nil
}

func renderStatusUpdate(o *order.Order) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := statusTmpl.Execute(&buf, viewOf(o)); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("تحديث حالة الطلب رقم #%d", o.ID), buf.String(), nil
}
