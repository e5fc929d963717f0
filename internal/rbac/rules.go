package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"course:view",
		"quiz:view",
		"attempt:create",
		"attempt:save",
		"attempt:submit",
		"attempt:view-own",
		"assignment:view",
		"assignment:submit",
		"fee:view-own",
		"announcement:view",
		"announcement:read",
		"user:update-own",
	},
	"teacher": {
		"course:create",
		"course:view",
		"course:enroll",
		"quiz:create",
		"quiz:view",
		"attempt:view-all",
		"assignment:create",
		"assignment:view",
		"assignment:grade",
		"announcement:create",
		"announcement:view",
		"announcement:read",
		"class:view",
		"timetable:view",
		"salary:view-own",
		"user:update-own",
		"users:list",
	},
	"admin": {
		"*", // everything
	},
}
