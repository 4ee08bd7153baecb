package apiresponse

const (
	MsgTaskFieldsRequired    = "taskFieldsRequired"
	MsgTaskCreated           = "taskCreated"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailListTasks         = "failListTasks"
	MsgUserFieldsRequired    = "userFieldsRequired"
	MsgUserExists            = "userExists"
	MsgUserCreated           = "userCreated"
	MsgFailCreateUser        = "failCreateUser"
	MsgFailListUsers         = "failListUsers"
	MsgLoginFieldsRequired   = "loginFieldsRequired"
	MsgInvalidCredentials    = "invalidCredentials"
	MsgLoginSuccess          = "loginSuccess"
	MsgFailLogin             = "failLogin"
	MsgProductFieldsRequired = "productFieldsRequired"
	MsgProductCreated        = "productCreated"
	MsgFailCreateProduct     = "failCreateProduct"
	MsgHello                 = "hello"
)
